package logger

import (
	"testing"

	"github.com/MikeRez0/ordermodule/internal/adapter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		conf     config.App
		expError bool
	}{
		{name: "Dev debug", conf: config.App{LogLevel: "debug", Mode: config.AppModeDevelop}},
		{name: "Prod error", conf: config.App{LogLevel: "error", Mode: config.AppModeProduction}},
		{name: "Bad level", conf: config.App{LogLevel: "loud"}, expError: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			log, err := NewLogger(&test.conf)
			if test.expError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			lvl, _ := zap.ParseAtomicLevel(test.conf.LogLevel)
			assert.True(t, log.Core().Enabled(lvl.Level()))
			assert.False(t, log.Core().Enabled(lvl.Level()-1))
		})
	}
}
