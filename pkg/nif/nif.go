package nif

// Result classifies the outcome of validating a candidate NIF.
// The zero value is a failure, so an uninitialized Result never reads
// as valid.
type Result uint8

const (
	// InvalidLength means the candidate is not exactly nine ASCII
	// decimal digits. Covers short, long, empty and non-digit input.
	InvalidLength Result = iota
	// InvalidCategory means the leading digit(s) do not match any
	// recognized taxpayer category.
	InvalidCategory
	// InvalidCheckDigit means the candidate is well-formed but its
	// ninth digit disagrees with the modulo-11 checksum.
	InvalidCheckDigit
	// Valid means the candidate passed every check.
	Valid
)

func (r Result) String() string {
	switch r {
	case Valid:
		return "valid"
	case InvalidLength:
		return "invalid length"
	case InvalidCategory:
		return "invalid category"
	case InvalidCheckDigit:
		return "invalid check digit"
	default:
		return "unknown"
	}
}

// Category is the taxpayer class encoded by a NIF's leading digit(s).
type Category uint8

const (
	CategoryUnknown Category = iota
	Individual
	NonResident
	Company
	PublicBody
	Inheritance
	SoleProprietor
	SpecialRegime
)

func (c Category) String() string {
	switch c {
	case Individual:
		return "individual"
	case NonResident:
		return "non-resident individual"
	case Company:
		return "company"
	case PublicBody:
		return "public body"
	case Inheritance:
		return "undivided inheritance"
	case SoleProprietor:
		return "sole proprietor"
	case SpecialRegime:
		return "special regime"
	default:
		return "unknown"
	}
}

// categoryByPrefix is the allowed leading-digit table from the official
// NIF algorithm. Two-digit prefixes take precedence over single digits;
// "45" is the only one, and it is recognized even though a bare "4" is
// not an accepted category.
var categoryByPrefix = map[string]Category{
	"1":  Individual,
	"2":  Individual,
	"3":  Individual,
	"45": NonResident,
	"5":  Company,
	"6":  PublicBody,
	"7":  Inheritance,
	"8":  SoleProprietor,
	"9":  SpecialRegime,
}

const nifLength = 9

// Validate reports whether candidate is a structurally valid NIF.
// It never panics; every malformed input is an ordinary negative Result.
func Validate(candidate string) Result {
	if len(candidate) != nifLength {
		return InvalidLength
	}
	for i := 0; i < nifLength; i++ {
		if candidate[i] < '0' || candidate[i] > '9' {
			return InvalidLength
		}
	}
	if categoryOf(candidate) == CategoryUnknown {
		return InvalidCategory
	}
	if checkDigit(candidate) != int(candidate[nifLength-1]-'0') {
		return InvalidCheckDigit
	}
	return Valid
}

// IsValid is the boolean form of Validate.
func IsValid(candidate string) bool {
	return Validate(candidate) == Valid
}

// categoryOf resolves the taxpayer category from the leading digit(s),
// preferring the two-digit prefix table over the single-digit one.
func categoryOf(s string) Category {
	if len(s) >= 2 {
		if c, ok := categoryByPrefix[s[:2]]; ok {
			return c
		}
	}
	if len(s) >= 1 {
		if c, ok := categoryByPrefix[s[:1]]; ok {
			return c
		}
	}
	return CategoryUnknown
}

// checkDigit computes the expected ninth digit from the first eight.
// Digit i (0-indexed) carries weight 9-i; with r = sum mod 11 the check
// digit is 0 when r is 0 or 1, otherwise 11-r.
func checkDigit(candidate string) int {
	sum := 0
	for i := 0; i < nifLength-1; i++ {
		sum += int(candidate[i]-'0') * (nifLength - i)
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// NIF is a structurally valid tax identification number. Obtain one
// through Parse; converting an arbitrary string bypasses validation.
type NIF string

// Parse validates candidate and returns it as a NIF, or the sentinel
// error describing the first failed check.
func Parse(candidate string) (NIF, error) {
	switch Validate(candidate) {
	case Valid:
		return NIF(candidate), nil
	case InvalidCategory:
		return "", ErrInvalidCategory
	case InvalidCheckDigit:
		return "", ErrInvalidCheckDigit
	default:
		return "", ErrInvalidLength
	}
}

func (n NIF) String() string { return string(n) }

// Category returns the taxpayer class encoded by the leading digit(s),
// or CategoryUnknown when they match no accepted prefix.
func (n NIF) Category() Category {
	return categoryOf(string(n))
}

// CheckDigit returns the ninth digit, or -1 for a malformed NIF not
// obtained through Parse.
func (n NIF) CheckDigit() int {
	if len(n) != nifLength {
		return -1
	}
	d := n[nifLength-1]
	if d < '0' || d > '9' {
		return -1
	}
	return int(d - '0')
}
