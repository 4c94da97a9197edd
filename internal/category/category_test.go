package category

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		componentID string
		expected    string
	}{
		{"resistor_220", "Basic"},
		{"ceramic_capacitor", "Basic"},
		{"led_rgb_1", "Semiconductors"},
		{"zener_diode", "Semiconductors"},
		{"arduino_uno", "Microcontrollers"},
		{"raspberry_pi_4", "Microcontrollers"},
		{"temperature_sensor", "Sensors"},
		{"servo_micro", "Actuators"},
		{"toggle_switch", "Input"},
		{"lcd_16x2", "Output"},
		{"header_2x5", "Connectors"},
		{"battery_9v", "Power"},
		{"mystery_part", "Miscellaneous"},
		{"RESISTOR_UPPER", "Basic"},
	}

	for _, tt := range tests {
		t.Run(tt.componentID, func(t *testing.T) {
			if got := Classify(tt.componentID); got != tt.expected {
				t.Errorf("Classify(%s): expected %s, got %s", tt.componentID, tt.expected, got)
			}
		})
	}
}
