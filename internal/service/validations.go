package service

import (
	"errors"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("display_name", func(fl validator.FieldLevel) bool {
			value := strings.TrimSpace(fl.Field().String())
			if value == "" {
				return false
			}
			for _, char := range value {
				// Letters, digits, spaces and a few name punctuation marks
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && !unicode.IsSpace(char) && !strings.ContainsRune("'-._", char) {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("mood_type", func(fl validator.FieldLevel) bool {
			return entity.MoodType(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("voice_tone", func(fl validator.FieldLevel) bool {
			switch entity.VoiceTone(fl.Field().String()) {
			case entity.ToneCalm, entity.ToneStressed, entity.ToneHappy, entity.ToneSad, entity.ToneAnxious:
				return true
			}
			return false
		})
	})
}

// validateStruct runs the shared validator and folds field errors into one error wrapping ErrValidation.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
