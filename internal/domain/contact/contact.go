package contact

// Contact represents one row of the contacts sheet.
type Contact struct {
	Name  string
	Phone string
	// Birthday keeps the raw cell value; it is parsed at filtering time so
	// that an unparseable value skips the contact instead of failing the load.
	Birthday string
	Timezone string // optional IANA zone name
	Notes    string // optional free text used for personalization
	Template string // optional greeting template containing a {name} placeholder
}
