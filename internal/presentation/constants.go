package presentation

const (
	HubModeParam      = "hub.mode"
	HubTokenParam     = "hub.verify_token"
	HubChallengeParam = "hub.challenge"
	SubscribeMode     = "subscribe"
)
