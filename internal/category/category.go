// Package category assigns parts-bin categories from component ids.
package category

import "strings"

// categoryRule maps id keywords to a bin, checked in order.
type categoryRule struct {
	category string
	keywords []string
}

// Keyword tables follow the standard Fritzing parts-bin taxonomy.
var rules = []categoryRule{
	{"Basic", []string{"resistor", "capacitor", "inductor"}},
	{"Semiconductors", []string{"led", "diode", "transistor"}},
	{"Microcontrollers", []string{"arduino", "raspberry", "microcontroller"}},
	{"Sensors", []string{"sensor", "accelerometer", "gyro"}},
	{"Actuators", []string{"motor", "servo", "actuator"}},
	{"Input", []string{"switch", "button", "potentiometer"}},
	{"Output", []string{"speaker", "display", "lcd"}},
	{"Connectors", []string{"connector", "header", "pin"}},
	{"Power", []string{"power", "battery", "regulator"}},
}

// Classify maps a component id to its category. Ids that match no keyword
// fall into Miscellaneous.
func Classify(componentID string) string {
	id := strings.ToLower(componentID)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(id, keyword) {
				return rule.category
			}
		}
	}
	return "Miscellaneous"
}
