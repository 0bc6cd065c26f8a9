// SPDX-License-Identifier: MPL-2.0

package grep

import "strings"

const (
	// RoleUnresolved is the role of arguments left behind a classification error.
	RoleUnresolved Role = iota
	// RoleFlag marks a flag cluster (including -e/-f whose value is the next argument).
	RoleFlag
	// RolePattern marks an inline pattern source.
	RolePattern
	// RolePatternFile marks the path of a file holding one pattern per line.
	RolePatternFile
	// RoleFilePath marks a file to scan.
	RoleFilePath
	// RoleError marks the argument that stopped classification.
	RoleError
)

type (
	// Role tags one command-line argument.
	Role int

	// Argument is a raw argument together with its classification.
	Argument struct {
		// Raw is the argument as given on the command line.
		Raw string
		// Value is the pattern, pattern file or file path the argument supplies.
		// For "-efoo" Raw is "-efoo" and Value is "foo".
		Value string
		Role  Role
		// Err describes the failure when Role is RoleError.
		Err *ArgumentError
	}

	// Classification is the outcome of one classification pass.
	Classification struct {
		// Args holds one entry per argument after the program name.
		Args    []Argument
		Options Options
	}

	// classifier is the mutable context threaded through the single pass.
	classifier struct {
		args []Argument
		opts Options
	}
)

// String returns the role name used in debug output.
func (r Role) String() string {
	switch r {
	case RoleFlag:
		return "flag"
	case RolePattern:
		return "pattern"
	case RolePatternFile:
		return "pattern-file"
	case RoleFilePath:
		return "file"
	case RoleError:
		return "error"
	default:
		return "unresolved"
	}
}

// Classify assigns a role to every argument after argv[0] in a single
// left-to-right pass and returns the accumulated Options.
//
// A bare operand becomes the pattern only while no pattern source has been
// seen yet (no earlier bare pattern, -e or -f); every later one is a file.
// Classification stops at the first invalid flag or missing flag value; the
// returned Classification is still populated up to that point.
func Classify(argv []string) (*Classification, error) {
	c := &classifier{}
	if len(argv) > 1 {
		c.args = make([]Argument, len(argv)-1)
		for i, raw := range argv[1:] {
			c.args[i] = Argument{Raw: raw, Value: raw}
		}
	}

	for i := 0; i < len(c.args); i++ {
		if c.args[i].Role != RoleUnresolved {
			continue
		}
		if !strings.HasPrefix(c.args[i].Raw, "-") {
			c.classifyOperand(i)
			continue
		}
		last, err := c.classifyCluster(i)
		if err != nil {
			return c.result(), err
		}
		i = last
	}

	return c.result(), nil
}

// Validate checks a finished classification for the operands a run needs.
func Validate(c *Classification) error {
	var hasFile, hasPattern bool
	for _, arg := range c.Args {
		switch arg.Role {
		case RoleError:
			return arg.Err
		case RoleFilePath:
			hasFile = true
		case RolePattern, RolePatternFile:
			hasPattern = true
		}
	}

	if !hasFile || (!hasPattern && !c.Options.PatternsFromFile) {
		return &ArgumentError{Kind: MissingOperand}
	}
	if c.Options.OnlyMatching && c.Options.Invert {
		return &ArgumentError{Kind: ConflictingOptions}
	}
	return nil
}

// Values returns the values of all arguments with the given role, in order.
func (c *Classification) Values(role Role) []string {
	var out []string
	for _, arg := range c.Args {
		if arg.Role == role {
			out = append(out, arg.Value)
		}
	}
	return out
}

func (c *classifier) result() *Classification {
	return &Classification{Args: c.args, Options: c.opts}
}

func (c *classifier) classifyOperand(i int) {
	if c.opts.InlinePatterns == 0 && !c.opts.ExplicitPatterns && !c.opts.PatternsFromFile {
		c.args[i].Role = RolePattern
		c.opts.InlinePatterns++
		return
	}
	c.args[i].Role = RoleFilePath
	c.opts.FileOperands++
}

// classifyCluster interprets every character after the leading '-' of
// argument i. It returns the index of the last argument it consumed.
func (c *classifier) classifyCluster(i int) (int, error) {
	raw := c.args[i].Raw
	for j := 1; j < len(raw); j++ {
		switch ch := raw[j]; ch {
		case 'e', 'f':
			return c.takeValue(i, j)
		case 'i':
			c.opts.IgnoreCase = true
		case 'v':
			c.opts.Invert = true
		case 'c':
			c.opts.CountOnly = true
		case 'l':
			c.opts.FilesWithMatches = true
		case 'n':
			c.opts.LineNumbers = true
		case 'h':
			c.opts.NoFilename = true
		case 's':
			c.opts.SuppressErrors = true
		case 'o':
			c.opts.OnlyMatching = true
		default:
			return i, c.fail(i, &ArgumentError{Kind: InvalidOption, Option: ch, Arg: raw})
		}
	}
	c.args[i].Role = RoleFlag
	return i, nil
}

// takeValue resolves the value of the -e/-f flag at raw[j]: the rest of the
// cluster when non-empty, otherwise the whole next argument.
func (c *classifier) takeValue(i, j int) (int, error) {
	raw := c.args[i].Raw
	flag := raw[j]

	role := RolePattern
	if flag == 'f' {
		role = RolePatternFile
		c.opts.PatternsFromFile = true
	} else {
		c.opts.ExplicitPatterns = true
	}

	if rest := raw[j+1:]; rest != "" {
		c.args[i].Value = rest
		c.args[i].Role = role
		return i, nil
	}
	if i+1 < len(c.args) {
		c.args[i].Role = RoleFlag
		c.args[i+1].Role = role
		return i + 1, nil
	}
	return i, c.fail(i, &ArgumentError{Kind: MissingValue, Option: flag, Arg: raw})
}

func (c *classifier) fail(i int, err *ArgumentError) error {
	c.args[i].Role = RoleError
	c.args[i].Err = err
	return err
}
