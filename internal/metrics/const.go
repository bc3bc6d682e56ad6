package metrics

const Namespace = "portfolio"

const (
	FetchResultSuccess = "success"
	FetchResultError   = "error"
)

const (
	FetchTriggerPush      = "push"
	FetchTriggerBroadcast = "broadcast"
	FetchTriggerPoll      = "poll"
	FetchTriggerColdStart = "cold_start"
)

const (
	LoginResultSuccess  = "success"
	LoginResultExchange = "exchange_failed"
	LoginResultDenied   = "denied"
)
