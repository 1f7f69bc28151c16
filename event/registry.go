package event

var typeToName = make(map[EventType]string)

func init() {
	RegisterType("eat", EventEat)
	RegisterType("blocked", EventBlocked)
	RegisterType("penetrated", EventPenetrated)
	RegisterType("revived", EventRevived)
	RegisterType("died", EventDied)
	RegisterType("game_over", EventGameOver)
	RegisterType("item_collected", EventItemCollected)
	RegisterType("grid_shrunk", EventGridShrunk)
}

// RegisterType names an EventType for logs and summaries
func RegisterType(name string, et EventType) {
	typeToName[et] = name
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "unknown"
}

func (et EventType) String() string {
	return GetEventName(et)
}
