package border

import "fmt"

var (
	errInvalidWidth = fmt.Errorf("border: invalid border-width value")
	errInvalidStyle = fmt.Errorf("border: invalid border-style value")
)
