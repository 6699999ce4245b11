//go:build unit
// +build unit

package logger

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/BillBrieferServer/scribe/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
		wantErr  bool
	}{
		{
			name: "console logger",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  config.LogTypeConsole,
			},
			wantErr: false,
		},
		{
			name: "debug console logger",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelDebug,
				LogType:  config.LogTypeConsole,
			},
			wantErr: false,
		},
		{
			name: "invalid log type",
			settings: &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  "invalid",
			},
			wantErr: true,
		},
		{
			name: "file logger missing path",
			settings: &config.LoggerSettings{
				LogLevel:   config.LogLevelInfo,
				LogType:    config.LogTypeFile,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLoggerSingleton()

			err := InitLogger(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			log, err := GetLogger()
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestInitLogger_FileLogger(t *testing.T) {
	resetLoggerSingleton()

	settings := &config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   filepath.Join(t.TempDir(), "scribe.log"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}

	require.NoError(t, InitLogger(settings))

	log, err := GetLogger()
	require.NoError(t, err)
	log.Info("file logger smoke test")
}

func TestGetLogger_BeforeInit(t *testing.T) {
	resetLoggerSingleton()

	_, err := GetLogger()
	assert.Error(t, err)
}

func TestInitLogger_SingletonKeepsFirstInstance(t *testing.T) {
	resetLoggerSingleton()

	consoleSettings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}
	require.NoError(t, InitLogger(consoleSettings))

	first, err := GetLogger()
	require.NoError(t, err)

	// A second initialization must not replace the existing logger.
	otherSettings := &config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	}
	require.NoError(t, InitLogger(otherSettings))

	second, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
