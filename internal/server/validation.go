package server

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var gameCodePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// registerValidators adds the custom binding tags the request structs use.
// Safe to call more than once.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("gamecode", func(fl validator.FieldLevel) bool {
		return gameCodePattern.MatchString(fl.Field().String())
	})
}
