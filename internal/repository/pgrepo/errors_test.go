package pgrepo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestConvertErr() {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrRecordNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: domain.ErrRecordNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: uniqueViolationCode}, want: domain.ErrDuplicateKey},
		{name: "missing owner", err: &pgconn.PgError{Code: foreignKeyViolationCode}, want: domain.ErrRecordNotFound},
		{name: "check violation", err: &pgconn.PgError{Code: checkViolationCode}, want: domain.ErrValidation},
		{name: "other pg error", err: &pgconn.PgError{Code: "40001"}, want: domain.ErrUnknown},
		{name: "plain error", err: errors.New("conn closed"), want: domain.ErrUnknown},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			err := convertErr(t.err, "finding user `%s`", "u1")
			s.Require().ErrorIs(err, t.want)
			s.Contains(err.Error(), "[repository/finding user `u1`]")
		})
	}
}

func (s *ErrorsTestSuite) TestConvertErrNil() {
	s.NoError(convertErr(nil, "noop"))
}
