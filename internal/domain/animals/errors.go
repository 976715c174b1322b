package animals

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidAnimal = goerr.New("The animal is not properly formatted")
	ErrNotFound      = goerr.New("animal not found")
)
