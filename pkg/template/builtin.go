package template

// builtinSource serves the compiled-in template table.
type builtinSource struct{}

func (builtinSource) List() ([]Info, error) {
	infos := make([]Info, 0, len(builtinTemplates))
	for _, t := range builtinTemplates {
		infos = append(infos, Info{Name: t.name, Description: t.description, Origin: "built-in"})
	}
	return infos, nil
}

func (builtinSource) Get(name string) (string, bool) {
	for _, t := range builtinTemplates {
		if t.name == name {
			return t.content, true
		}
	}
	return "", false
}

type builtinTemplate struct {
	name        string
	description string
	content     string
}

var builtinTemplates = []builtinTemplate{
	{"standard", "Standard GitHub labels (bug, feature, documentation, etc.)", templateStandard},
	{"semantic", "Semantic labels (breaking, feature, bugfix, docs, etc.)", templateSemantic},
	{"priority", "Priority-based labels (critical, high, medium, low)", templatePriority},
	{"priority-prefixed", "Rust-style priority labels (P-critical, P-high, etc.)", templatePriorityPrefixed},
	{"type", "Type-based labels (type/bug, type/feature, type/docs, etc.)", templateType},
	{"area", "Area-based labels (area/api, area/cli, area/docs, etc.)", templateArea},
	{"operational", "Operational labels (O-hiring, O-roadmap, etc.)", templateOperational},
}

const templateStandard = `# Standard GitHub Labels Template
# Common labels used in most GitHub projects

[[labels]]
name = "bug"
color = "d73a49"
description = "Something isn't working"
update_if_match = ["Bug", "bug-report", "bug", "C-bug"]

[[labels]]
name = "feature"
color = "a2eeef"
description = "New feature or request"
update_if_match = ["Feature request", "enhancement", "feature", "C-feature"]

[[labels]]
name = "documentation"
color = "0075ca"
description = "Improvements or additions to documentation"
update_if_match = ["docs", "documentation", "C-documentation"]

[[labels]]
name = "good first issue"
color = "7057ff"
description = "Good for newcomers"
update_if_match = ["good-first-issue", "good first issue", "C-good-first-issue"]

[[labels]]
name = "help wanted"
color = "008672"
description = "Extra attention is needed"
update_if_match = ["help-wanted", "needs-help", "help wanted", "C-help-wanted"]

[[labels]]
name = "invalid"
color = "e4e669"
description = "This doesn't seem right"
update_if_match = ["invalid", "C-invalid"]

[[labels]]
name = "question"
color = "d876e3"
description = "Further information is requested"
update_if_match = ["question", "C-question"]

[[labels]]
name = "wontfix"
color = "ffffff"
description = "This will not be worked on"
update_if_match = ["wontfix", "won't fix", "C-wontfix"]

delete = ["duplicate", "type/bug", "type/feature"]
`

const templateSemantic = `# Semantic Release Labels Template
# Labels following semantic versioning conventions

[[labels]]
name = "breaking"
color = "d73a49"
description = "Breaking change - requires major version bump"
update_if_match = ["S-breaking"]

[[labels]]
name = "feature"
color = "a2eeef"
description = "New feature - requires minor version bump"
update_if_match = ["S-feature"]

[[labels]]
name = "bugfix"
color = "fbca04"
description = "Bug fix - requires patch version bump"
update_if_match = ["S-bugfix"]

[[labels]]
name = "docs"
color = "0075ca"
description = "Documentation updates"
update_if_match = ["S-docs"]

[[labels]]
name = "refactor"
color = "7057ff"
description = "Code refactoring without feature changes"
update_if_match = ["S-refactor"]

[[labels]]
name = "test"
color = "008672"
description = "Test additions or improvements"
update_if_match = ["S-test"]

[[labels]]
name = "chore"
color = "cccccc"
description = "Maintenance or tool updates"
update_if_match = ["S-chore"]

[[labels]]
name = "ci"
color = "e4e669"
description = "CI/CD and automation changes"
update_if_match = ["S-ci"]
`

const templatePriority = `# Priority-Based Labels Template
# Use priority levels to triage and prioritize work

[[labels]]
name = "priority/critical"
color = "b60205"
description = "Critical priority - must be addressed immediately"
update_if_match = ["P0", "critical", "P-critical", "priority/critical", "Critical"]

[[labels]]
name = "priority/high"
color = "d73a49"
description = "High priority - address soon"
update_if_match = ["P1", "urgent", "P-high", "priority/high", "High"]

[[labels]]
name = "priority/medium"
color = "f0883e"
description = "Medium priority - address when available"
update_if_match = ["P2", "P-medium", "priority/medium", "Medium"]

[[labels]]
name = "priority/low"
color = "0075ca"
description = "Low priority - address eventually"
update_if_match = ["P3", "nice-to-have", "P-low", "priority/low", "Low"]

[[labels]]
name = "priority/backlog"
color = "cccccc"
description = "Backlog - not currently planned"
update_if_match = ["P4", "P-backlog", "priority/backlog", "Backlog"]
`

const templatePriorityPrefixed = `# Priority Labels Template (P- prefixes)
# Rust-style priority labels

[[labels]]
name = "P-critical"
color = "b60205"
description = "Priority: Critical - must be addressed immediately"
update_if_match = ["priority/critical", "critical", "P0", "Critical"]

[[labels]]
name = "P-high"
color = "d73a49"
description = "Priority: High - address soon"
update_if_match = ["priority/high", "urgent", "P1", "High"]

[[labels]]
name = "P-medium"
color = "f0883e"
description = "Priority: Medium - address when available"
update_if_match = ["priority/medium", "P2", "Medium"]

[[labels]]
name = "P-low"
color = "0075ca"
description = "Priority: Low - address eventually"
update_if_match = ["priority/low", "nice-to-have", "P3", "Low"]

[[labels]]
name = "P-backlog"
color = "cccccc"
description = "Priority: Backlog - not currently planned"
update_if_match = ["priority/backlog", "P4", "Backlog"]
`

const templateType = `# Type-Based Labels Template
# Categorize issues and PRs by type

[[labels]]
name = "type/bug"
color = "d73a49"
description = "Bug report"
update_if_match = ["bug", "Bug", "type/bug", "T-bug"]

[[labels]]
name = "type/feature"
color = "a2eeef"
description = "Feature request"
update_if_match = ["feature", "Feature", "type/feature", "T-feature"]

[[labels]]
name = "type/enhancement"
color = "a2eeef"
description = "Enhancement to existing feature"
update_if_match = ["enhancement", "type/enhancement", "Enhancement", "T-enhancement"]

[[labels]]
name = "type/docs"
color = "0075ca"
description = "Documentation"
update_if_match = ["docs", "documentation", "type/docs", "T-docs"]

[[labels]]
name = "type/question"
color = "d876e3"
description = "Question or discussion"
update_if_match = ["question", "discussion", "type/question", "Question", "T-question"]

[[labels]]
name = "type/test"
color = "008672"
description = "Test improvements"
update_if_match = ["type/test", "tests", "T-test"]

[[labels]]
name = "type/refactor"
color = "7057ff"
description = "Refactoring"
update_if_match = ["type/refactor", "refactor", "T-refactor"]

[[labels]]
name = "type/chore"
color = "cccccc"
description = "Chores and maintenance"
update_if_match = ["chore", "type/chore", "Chore", "T-chore"]
`

const templateArea = `# Area-Based Labels Template (Rust-style prefixes)
# Organize issues and PRs by area of the codebase

[[labels]]
name = "A-api"
color = "0075ca"
description = "Area: API"

[[labels]]
name = "A-cli"
color = "0075ca"
description = "Area: CLI"

[[labels]]
name = "A-docs"
color = "0075ca"
description = "Area: Documentation"

[[labels]]
name = "A-core"
color = "0075ca"
description = "Area: Core"

[[labels]]
name = "A-testing"
color = "0075ca"
description = "Area: Testing"

[[labels]]
name = "A-ci"
color = "0075ca"
description = "Area: CI/CD"

[[labels]]
name = "A-performance"
color = "fbca04"
description = "Area: Performance"

[[labels]]
name = "A-security"
color = "d73a49"
description = "Area: Security"
`

const templateOperational = `# Operational Labels Template (O- prefixes)
# Operational workstreams and meta items

[[labels]]
name = "O-hiring"
color = "0075ca"
description = "Operational: Hiring and staffing"

[[labels]]
name = "O-roadmap"
color = "a2eeef"
description = "Operational: Roadmap and planning"

[[labels]]
name = "O-incident"
color = "d73a49"
description = "Operational: Incident response and follow-up"

[[labels]]
name = "O-maintenance"
color = "cccccc"
description = "Operational: Maintenance and chores"

[[labels]]
name = "O-compliance"
color = "e4e669"
description = "Operational: Compliance, audits, and risk"
`
