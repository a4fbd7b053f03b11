package parser

// Prefixes recognised across the command grammar
const (
	PrefixName      Prefix = "n/"
	PrefixPhone     Prefix = "p/"
	PrefixEmail     Prefix = "e/"
	PrefixAddress   Prefix = "a/"
	PrefixRole      Prefix = "r/"
	PrefixTag       Prefix = "tag/"
	PrefixStartDate Prefix = "startdate/"
	PrefixStartTime Prefix = "start/"
	PrefixEndDate   Prefix = "enddate/"
	PrefixEndTime   Prefix = "end/"
)

// appointmentPrefixes must appear in exactly this relative order
var appointmentPrefixes = []Prefix{PrefixStartDate, PrefixStartTime, PrefixEndDate, PrefixEndTime}
