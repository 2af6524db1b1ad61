package services

// OptionalText tracks tri-state semantics for nullable text fields in
// partial updates (RFC 7396 PATCH). Transport-agnostic (no JSON tags);
// handlers map from httputil.OptionalString.
//   - Present=false: field absent from request (don't change)
//   - Present=true, Value=nil: field is null (clear)
//   - Present=true, Value=&s: field set to s
type OptionalText struct {
	Present bool
	Value   *string
}
