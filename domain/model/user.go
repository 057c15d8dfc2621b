package model

import "github.com/golang-jwt/jwt"

type Capability string

const (
	CapabilityBrowseMedia    Capability = "upload_files"
	CapabilityEditContent    Capability = "edit_posts"
	CapabilityManageSettings Capability = "manage_options"
)

// RoleCapabilities expands a host role into the capabilities it grants.
var RoleCapabilities = map[string][]Capability{
	"administrator": {CapabilityBrowseMedia, CapabilityEditContent, CapabilityManageSettings},
	"editor":        {CapabilityBrowseMedia, CapabilityEditContent},
	"author":        {CapabilityBrowseMedia, CapabilityEditContent},
	"contributor":   {CapabilityEditContent},
	"subscriber":    {},
}

// UserClaims is the token payload issued by the host
type UserClaims struct {
	UserName     string   `json:"user_name"`
	Role         string   `json:"role,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	jwt.StandardClaims
}

// Has reports whether the claims grant capability, either directly or through the role.
func (c UserClaims) Has(capability Capability) bool {
	for _, v := range c.Capabilities {
		if Capability(v) == capability {
			return true
		}
	}
	for _, v := range RoleCapabilities[c.Role] {
		if v == capability {
			return true
		}
	}
	return false
}
