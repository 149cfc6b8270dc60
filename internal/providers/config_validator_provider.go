package providers

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gookit/validate"

	"mindtrackerd/internal/structures"
)

var registerValidatorsOnce sync.Once

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	registerValidatorsOnce.Do(func() {
		validate.AddValidator("unixPath", func(val interface{}) bool {
			s, ok := val.(string)
			if !ok || s == "" {
				return false
			}
			return strings.HasPrefix(s, "/") && !strings.ContainsRune(s, 0)
		})
	})
	return &CnfValidator{conf: conf}
}

func (v *CnfValidator) Validate() error {
	vd := validate.Struct(v.conf)
	if !vd.Validate() {
		return vd.Errors.OneError()
	}

	// Cross-field checks the tag syntax cannot express.
	if v.conf.Auth.Mode == "remote" && v.conf.Auth.Endpoint == "" {
		return fmt.Errorf("auth.endpoint is required when auth.mode is remote")
	}

	return nil
}
