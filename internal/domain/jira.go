package domain

// Jira REST API endpoints used by the connection.
// These are the Jira Cloud v3 endpoints; the connection does not own the
// wire format, it only decodes what the remote API returns.
const (
	ProjectsEndpoint = "/rest/api/3/project"
	IssueEndpoint    = "/rest/api/3/issue/"
	SearchEndpoint   = "/rest/api/3/search"
)

// DefaultMaxResults is the page size used for JQL searches when the caller
// does not specify one. Single-page fetch only: if the requested page size
// exceeds the remote service's own cap, the service's cap wins and no
// multi-page aggregation is attempted.
const DefaultMaxResults = 50

// ReturnType selects the shape of a JQL query result.
type ReturnType int

const (
	// ReturnCount yields the integer total number of matching issues.
	ReturnCount ReturnType = iota
	// ReturnList yields the list of issue objects, capped by maxResults.
	ReturnList
	// ReturnFrame yields a Frame with one row per issue and columns
	// derived from the union of flattened field keys.
	ReturnFrame
)

// String returns the string representation of a ReturnType.
func (r ReturnType) String() string {
	switch r {
	case ReturnCount:
		return "count"
	case ReturnList:
		return "list"
	case ReturnFrame:
		return "dataframe"
	default:
		return "unknown"
	}
}

// Valid reports whether r is one of the recognized return types.
func (r ReturnType) Valid() bool {
	switch r {
	case ReturnCount, ReturnList, ReturnFrame:
		return true
	default:
		return false
	}
}

// ParseReturnType converts a string to a ReturnType.
// Returns an ArgumentError for unrecognized values.
func ParseReturnType(s string) (ReturnType, error) {
	switch s {
	case "count":
		return ReturnCount, nil
	case "list":
		return ReturnList, nil
	case "dataframe":
		return ReturnFrame, nil
	default:
		return 0, &ArgumentError{Name: "return_type", Reason: "must be one of count, list, dataframe: " + s}
	}
}

// SearchResults is the envelope returned by the Jira search endpoint.
// Issues are kept as raw decoded objects: the connection does not validate
// them against a schema, it hands them to the caller (or to Flatten) as-is.
type SearchResults struct {
	Issues     []map[string]any `json:"issues"`
	Total      int              `json:"total"`
	StartAt    int              `json:"startAt"`
	MaxResults int              `json:"maxResults"`
}
