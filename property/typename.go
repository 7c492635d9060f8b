package property

import "fmt"

// goTypeName is the fallback type-identity string for element types not
// covered by the fast switch in typeName; kept in its own file since it's
// the one spot in this package that pays for reflection-ish formatting.
func goTypeName(v any) string {
	return fmt.Sprintf("%T", v)
}
