package domain

import "fmt"

type Store struct {
	ID       string
	Name     string
	Settings map[string]string
}

// SettingValue returns the named setting or def when the store has none.
func (s *Store) SettingValue(name, def string) string {
	if s == nil {
		return def
	}
	if v, ok := s.Settings[name]; ok && v != "" {
		return v
	}
	return def
}

// NumberTemplateSetting is the store setting overriding the number template
// of an operation type, e.g. Order.ShipmentNewNumberTemplate.
func NumberTemplateSetting(operationType string) string {
	return fmt.Sprintf("Order.%sNewNumberTemplate", operationType)
}
