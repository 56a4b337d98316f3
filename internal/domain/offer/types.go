package offer

// Audience controls who can see an offer. Nonprofit partners get an
// early-access window before the public listing opens.
type Audience string

const (
	AudiencePublic    Audience = "public"
	AudienceNonprofit Audience = "nonprofit"
)

func (a Audience) String() string {
	return string(a)
}

func (a Audience) IsValid() bool {
	switch a {
	case AudiencePublic, AudienceNonprofit:
		return true
	default:
		return false
	}
}

// ParseAudience maps the client's user_type parameter onto an audience,
// defaulting unknown values to public.
func ParseAudience(s string) Audience {
	if s == string(AudienceNonprofit) {
		return AudienceNonprofit
	}
	return AudiencePublic
}
