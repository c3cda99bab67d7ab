package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
)

// CreateConnectedAccount создает express аккаунт c запрошенными card_payments и transfers. Дубликаты
// не отслеживаются: повторный вызов создаст новый аккаунт.
func (g *Gateway) CreateConnectedAccount(ctx context.Context, profile domain.ConnectedAccountProfile) (string, error) {
	params := &stripe.AccountCreateParams{
		Type:  stripe.String(accountTypeExpress),
		Email: stripe.String(profile.Email),
		Capabilities: &stripe.AccountCreateCapabilitiesParams{
			CardPayments: &stripe.AccountCreateCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
			Transfers: &stripe.AccountCreateCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
		BusinessProfile: &stripe.AccountCreateBusinessProfileParams{
			URL: stripe.String(defaultIfBlank(profile.BusinessURL, g.cfg.BusinessURL)),
		},
		Params: stripe.Params{
			Metadata: map[string]string{
				domain.MetadataMerchantUserID: profile.UserID,
			},
		},
	}
	if profile.Country != "" {
		params.Country = stripe.String(strings.ToUpper(profile.Country))
	}
	if profile.Currency != "" {
		params.DefaultCurrency = stripe.String(strings.ToLower(profile.Currency))
	}
	if profile.BusinessName != "" {
		params.BusinessProfile.Name = stripe.String(profile.BusinessName)
	}

	account, err := g.client.V1Accounts.Create(ctx, params)
	if err != nil {
		return "", upstreamErr("create account", err)
	}

	g.l.WithFields(logrus.Fields{
		"userID":    profile.UserID,
		"accountID": account.ID,
	}).Info("connected account created")
	return account.ID, nil
}

// CreateOrUpdateConnectedAccount обновляет профиль существующего аккаунта или создает новый.
func (g *Gateway) CreateOrUpdateConnectedAccount(
	ctx context.Context,
	profile domain.ConnectedAccountProfile,
) (string, error) {
	if profile.AccountID == "" {
		return g.CreateConnectedAccount(ctx, profile)
	}

	params := &stripe.AccountUpdateParams{}
	if profile.Email != "" {
		params.Email = stripe.String(profile.Email)
	}
	if profile.BusinessName != "" || profile.BusinessURL != "" {
		params.BusinessProfile = &stripe.AccountUpdateBusinessProfileParams{}
		if profile.BusinessName != "" {
			params.BusinessProfile.Name = stripe.String(profile.BusinessName)
		}
		if profile.BusinessURL != "" {
			params.BusinessProfile.URL = stripe.String(profile.BusinessURL)
		}
	}

	account, err := g.client.V1Accounts.Update(ctx, profile.AccountID, params)
	if err != nil {
		return "", upstreamErr("update account", err)
	}
	return account.ID, nil
}

// CreateOnboardingLink создает ссылку онбординга. Невалидные адреса возврата заменяются адресами из конфигурации.
func (g *Gateway) CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	resolvedRefresh, refreshErr := g.resolveRedirectURL(refreshURL, g.cfg.OnboardingRefreshURL)
	if refreshErr != nil {
		return "", fmt.Errorf("refresh url: %w", refreshErr)
	}
	resolvedReturn, returnErr := g.resolveRedirectURL(returnURL, g.cfg.OnboardingReturnURL)
	if returnErr != nil {
		return "", fmt.Errorf("return url: %w", returnErr)
	}

	link, err := g.client.V1AccountLinks.Create(ctx, &stripe.AccountLinkCreateParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(resolvedRefresh),
		ReturnURL:  stripe.String(resolvedReturn),
		Type:       stripe.String(accountLinkOnboarding),
	})
	if err != nil {
		return "", upstreamErr("create account link", err)
	}
	return link.URL, nil
}

func (g *Gateway) resolveRedirectURL(candidate, fallback string) (string, error) {
	if isHTTPSURL(candidate) {
		return candidate, nil
	}
	if !isHTTPSURL(fallback) {
		return "", domain.ErrInvalidRedirectURL
	}
	if candidate != "" {
		g.l.WithFields(logrus.Fields{
			"url":      candidate,
			"fallback": fallback,
		}).Warn("redirect url is not an absolute https url, using default")
	}
	return fallback, nil
}

func defaultIfBlank(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
