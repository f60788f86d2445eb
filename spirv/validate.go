package spirv

import (
	"regexp"
	"strings"
)

// Validate checks two properties of the assembled module and returns the
// first failure: the sentinel id introduced by a constant-pool miss never
// escaped into the output, and every branch label from the label table
// that is referenced is defined exactly once. It does not check that
// every referenced variable or constant is declared, nor EXEC/SCC
// consistency. Grounded on the teacher's validate pass over
// the IR, adapted from handle-graph closure checking to a textual grep
// over the rendered lines (there is no handle graph here, only names).
func Validate(ctx *TranslationContext, mod *Module) *Error {
	if err := validateNoSentinel(mod); err != nil {
		return err
	}
	return validateLabelDiscipline(ctx, mod)
}

func validateNoSentinel(mod *Module) *Error {
	for _, line := range mod.Functions {
		if strings.Contains(line, sentinelConstID) {
			return NewError(ErrBug, "assembled function body references the constant-pool miss sentinel")
		}
	}
	return nil
}

var labelDefPattern = regexp.MustCompile(`^%(label_\d+_\d+) = ` + OpLabel + `$`)

// validateLabelDiscipline checks that every label id used as a branch
// target was also defined exactly once -- a looser check than full
// dominance analysis, but enough to catch the two bugs a broken
// LabelsReversed walk would actually produce: a dangling branch, or a
// label emitted twice.
func validateLabelDiscipline(ctx *TranslationContext, mod *Module) *Error {
	defined := map[string]int{}
	referenced := map[string]bool{}

	for _, line := range mod.Functions {
		if m := labelDefPattern.FindStringSubmatch(line); m != nil {
			defined[m[1]]++
		}
		for _, l := range ctx.Code.Labels {
			name := "label_" + itoa(l.DstPC) + "_" + itoa(l.SrcPC)
			if strings.Contains(line, "%"+name) {
				referenced[name] = true
			}
		}
	}

	for name, n := range defined {
		if n > 1 {
			return NewError(ErrBug, "label "+name+" defined "+itoa(uint32(n))+" times")
		}
	}
	for name := range referenced {
		if defined[name] == 0 {
			return NewError(ErrBug, "label "+name+" referenced but never defined")
		}
	}
	return nil
}

func itoa(n uint32) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
