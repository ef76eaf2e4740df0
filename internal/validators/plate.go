package validators

import (
	"regexp"
	"strings"
)

// Old-format (ABC123) and Mercosur (AB123CD) license plates.
var plateRe = regexp.MustCompile(`^([A-Z]{3}[0-9]{3}|[A-Z]{2}[0-9]{3}[A-Z]{2})$`)

func IsValidPlate(plate string) bool {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	return plateRe.MatchString(plate)
}
