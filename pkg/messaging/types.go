package messaging

type ChangeTopic string

const (
	GlobalPrefix  = "global"
	TrackingTopic ChangeTopic = "tracking"
)
