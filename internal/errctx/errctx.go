/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package errctx annotates errors with a trace of "in element X" frames
// as they propagate up through the SAE walker (which the semantic
// extractor drives) and the block-amendment converter, so a failure
// three levels deep still names the Article and Paragraph it happened in.
package errctx

import "fmt"

// Wrap annotates err with the kind and identifier of the element being
// processed when it occurred, e.g. Wrap(err, "Article", "3:4") produces
// an error whose message starts with "in Article 3:4: ...".
//
// A nil err passed in yields a nil error out, so call sites can wrap
// unconditionally around a `return errctx.Wrap(err, ...)` without an
// extra nil check.
func Wrap(err error, kind, identifier string) error {
	if err == nil {
		return nil
	}
	if identifier == "" {
		return fmt.Errorf("in %s: %w", kind, err)
	}
	return fmt.Errorf("in %s %s: %w", kind, identifier, err)
}

// Wrapf is like Wrap but the message itself is also formatted, for call
// sites that want to add a verb ("while parsing Y") rather than just an
// element frame.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(fmt.Sprintf(format, args...)+": %w", err)
}
