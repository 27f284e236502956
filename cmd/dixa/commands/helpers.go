package commands

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/helplane-io/dixa-client/pkg/dixa"
	"github.com/helplane-io/dixa-client/pkg/dixaclient"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Output format constants.
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"

	// NotAvailable is rendered in table cells with no value.
	NotAvailable = "N/A"
)

// Static errors.
var (
	ErrAPIKeyNotConfigured = errors.New("no API key configured, run 'dixa login' or set DIXA_TOKEN")
)

// CreateClient creates a Dixa client from the CLI configuration.
func CreateClient() (dixa.Client, error) {
	apiKey := viper.GetString("token")
	if apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	config := &dixa.Config{
		APIKey:  apiKey,
		BaseURL: viper.GetString("api-url"),
	}

	if viper.GetBool("verbose") {
		logger, err := newCLILogger()
		if err != nil {
			return nil, err
		}

		config.Logger = logger
		config.Debug = true
	}

	return dixaclient.New(config)
}

// StandardJSONRenderer encodes data as indented JSON to stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

// StandardYAMLRenderer encodes data as YAML to stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()

	return encoder.Encode(data)
}

// zapLogger adapts a zap.SugaredLogger to the dixa.Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newCLILogger() (*zapLogger, error) {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	return &zapLogger{sugar: zl.Sugar()}, nil
}

func (l *zapLogger) Debug(msg string, fields map[string]interface{}) {
	l.sugar.Debugw(msg, flatten(fields)...)
}

func (l *zapLogger) Info(msg string, fields map[string]interface{}) {
	l.sugar.Infow(msg, flatten(fields)...)
}

func (l *zapLogger) Warn(msg string, fields map[string]interface{}) {
	l.sugar.Warnw(msg, flatten(fields)...)
}

func (l *zapLogger) Error(msg string, fields map[string]interface{}) {
	l.sugar.Errorw(msg, flatten(fields)...)
}

func flatten(fields map[string]interface{}) []interface{} {
	kv := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}

	return kv
}

// stringOrNA returns the value of a string pointer or a placeholder.
func stringOrNA(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}

	return *s
}
