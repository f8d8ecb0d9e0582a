package actions

// Runner environment variables.
const (
	EnvOutput      = "GITHUB_OUTPUT"
	EnvStepSummary = "GITHUB_STEP_SUMMARY"
	EnvEventPath   = "GITHUB_EVENT_PATH"
	EnvEventName   = "GITHUB_EVENT_NAME"
	EnvRepository  = "GITHUB_REPOSITORY"
	EnvToken       = "GITHUB_TOKEN"
	EnvAPIURL      = "GITHUB_API_URL"
	EnvActions     = "GITHUB_ACTIONS"
)

// Context describes the workflow run envdiff executes in.
type Context struct {
	OutputPath  string
	SummaryPath string
	EventPath   string
	EventName   string
	Repository  string
	Token       string
	APIURL      string
	InActions   bool
}

// ContextFromEnv reads the runner environment through lookup.
func ContextFromEnv(lookup func(string) (string, bool)) Context {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	return Context{
		OutputPath:  get(EnvOutput),
		SummaryPath: get(EnvStepSummary),
		EventPath:   get(EnvEventPath),
		EventName:   get(EnvEventName),
		Repository:  get(EnvRepository),
		Token:       get(EnvToken),
		APIURL:      get(EnvAPIURL),
		InActions:   get(EnvActions) == "true",
	}
}
