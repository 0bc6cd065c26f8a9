// SPDX-License-Identifier: MPL-2.0

package cat

import "strings"

// Options selects the transformations applied while copying.
type Options struct {
	// NumberNonBlank numbers non-empty lines (-b). It overrides NumberAll.
	NumberNonBlank bool
	// NumberAll numbers every line (-n).
	NumberAll bool
	// Squeeze drops all but the first blank line of a run (-s).
	Squeeze bool
	// ShowEnds prints '$' before every newline (-E).
	ShowEnds bool
	// ShowTabs prints tabs as ^I (-T).
	ShowTabs bool
	// ShowNonPrinting uses ^ and M- notation for control bytes (-v).
	ShowNonPrinting bool
}

// ParseArgs parses argv (argv[0] is the program name) into options and file
// operands. Option scanning stops at the first operand or after "--"; a lone
// "-" is an operand.
func ParseArgs(argv []string) (Options, []string, error) {
	var opts Options
	if len(argv) < 2 {
		return opts, nil, nil
	}

	args := argv[1:]
	for len(args) > 0 {
		arg := args[0]
		if arg == "--" {
			args = args[1:]
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}
		for i := 1; i < len(arg); i++ {
			if err := opts.set(arg[i]); err != nil {
				return opts, nil, err
			}
		}
		args = args[1:]
	}
	return opts, args, nil
}

func (o *Options) set(ch byte) error {
	switch ch {
	case 'b':
		o.NumberNonBlank = true
	case 'n':
		o.NumberAll = true
	case 's':
		o.Squeeze = true
	case 'E':
		o.ShowEnds = true
	case 'e':
		o.ShowEnds, o.ShowNonPrinting = true, true
	case 'T':
		o.ShowTabs = true
	case 't':
		o.ShowTabs, o.ShowNonPrinting = true, true
	case 'v':
		o.ShowNonPrinting = true
	case 'A':
		o.ShowEnds, o.ShowTabs, o.ShowNonPrinting = true, true, true
	default:
		return &OptionError{Char: ch}
	}
	return nil
}
