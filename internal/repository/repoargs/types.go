package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	TransactionRepoName  RepositoryName = "transaction"
	PayoutRepoName       RepositoryName = "payout"
	PushTokenRepoName    RepositoryName = "push_token"
	WebhookEventRepoName RepositoryName = "webhook_event"
)
