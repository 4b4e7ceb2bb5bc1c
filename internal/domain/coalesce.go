package domain

// StrOr returns *p when p is non-nil, otherwise current.
func StrOr(current string, p *string) string {
	if p != nil {
		return *p
	}
	return current
}

// BoolOr returns *p when p is non-nil, otherwise current.
func BoolOr(current bool, p *bool) bool {
	if p != nil {
		return *p
	}
	return current
}

// StringsOr returns a copy of *p when p is non-nil, otherwise current.
func StringsOr(current []string, p *[]string) []string {
	if p == nil {
		return current
	}
	out := make([]string, len(*p))
	copy(out, *p)
	return out
}

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
