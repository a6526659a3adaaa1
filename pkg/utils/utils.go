package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/nimeshabuddhika/fraud-analysis-web/pkg"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// IsEmpty checks if a string is empty.
func IsEmpty(s string) bool {
	return s == ""
}

func GetTraceID(c *gin.Context) (string, error) {
	traceID := c.GetString(pkg.TraceId)
	if IsEmpty(traceID) {
		return "", errors.New("trace id is empty")
	}
	return traceID, nil
}

// ParseStructEnv binds env vars to struct fields using a mapstructure tag
func ParseStructEnv(cfg interface{}) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if IsEmpty(tag) {
			continue
		}
		if err := viper.BindEnv(tag); err != nil {
			return err
		}
	}
	return viper.Unmarshal(cfg)
}

// FormatConfigErrors turns validator errors into one error naming the offending
// config keys (mapstructure tags), logging each violation.
func FormatConfigErrors(logger *zap.Logger, err error, cfg interface{}) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	t := reflect.TypeOf(cfg)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	problems := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		key := fe.Field()
		if field, ok := t.FieldByName(fe.StructField()); ok {
			if tag := field.Tag.Get("mapstructure"); !IsEmpty(tag) {
				key = tag
			}
		}
		rule := fe.Tag()
		if !IsEmpty(fe.Param()) {
			rule = rule + "=" + fe.Param()
		}
		logger.Error("invalid_config_value", zap.String("key", key), zap.String("rule", rule))
		problems = append(problems, fmt.Sprintf("%s failed '%s'", key, rule))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
}
