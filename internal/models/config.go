package models

type (
	// MessageFormatFunc turns the answers of one session into the final
	// commit message.
	MessageFormatFunc func(answers Answers, cfg *EffectiveConfig, branch string) (string, error)

	// BranchFormatFunc extracts a value from the branch name. ok is false
	// when the branch carries nothing usable.
	BranchFormatFunc func(branch string) (value string, ok bool)

	// EffectiveConfig is the configuration after user overrides have been
	// applied on top of the defaults.
	EffectiveConfig struct {
		Types               []CommitType
		Scopes              []string
		IssuePrefix         string
		AdditionalQuestions []Question
		MessageFormat       MessageFormatFunc
		BranchFormat        BranchFormatFunc

		// Extra holds keys of the config file that are not part of the
		// schema. They are kept but have no effect.
		Extra map[string]any

		// Source is the file the overrides were read from, empty for defaults.
		Source string
	}
)

func (c *EffectiveConfig) HasIssuePrefix() bool {
	return c.IssuePrefix != ""
}
