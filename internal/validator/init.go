package validator

import (
	"ctchen222/minimax-tic-tac-toe/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("mark", validateMark); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("cell", validateCell); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// validateMark accepts X or O.
func validateMark(fl validator.FieldLevel) bool {
	mark := game.PlayerMark(fl.Field().String())
	return mark == game.PlayerX || mark == game.PlayerO
}

// validateCell accepts X, O or an empty cell.
func validateCell(fl validator.FieldLevel) bool {
	return game.PlayerMark(fl.Field().String()) == game.None || validateMark(fl)
}
