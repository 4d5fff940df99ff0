/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package walker implements the generic SAE tree traversal used by the
// semantic extractor and the block-amendment converter, as two parallel
// interfaces (Visitor, MutVisitor) so read-only passes don't pay for
// mutability.
//
// Block amendments and quoted blocks are deliberately not descended
// into by either walker: they're handled by blockamendment's own
// dedicated pass.
package walker

import (
	"fmt"

	"github.com/badicsalex/hunlaw/internal/errctx"
	"github.com/badicsalex/hunlaw/structure"
)

// Visitor is the read-only SAE visitor used by Walk.
type Visitor interface {
	// OnEnter is called when descending into a branching SAE.
	OnEnter(intro string, wrapUp *string, semantic *structure.SemanticInfo) error
	// OnExit is called after all of a branching SAE's children have
	// been visited.
	OnExit(intro string, wrapUp *string, semantic *structure.SemanticInfo) error
	// OnText is called on every leaf SAE instead of OnEnter/OnExit.
	OnText(text string, semantic *structure.SemanticInfo) error
}

// MutVisitor is the mutating counterpart of Visitor: every field it is
// handed may be modified in place by the callback.
type MutVisitor interface {
	OnEnter(intro *string, wrapUp **string, semantic *structure.SemanticInfo) error
	OnExit(intro *string, wrapUp **string, semantic *structure.SemanticInfo) error
	OnText(text *string, semantic *structure.SemanticInfo) error
}

// Walk traverses act's Articles' Paragraphs (and their descendants) in
// document order, calling v's callbacks on every SAE it encounters.
func Walk(act *structure.Act, v Visitor) error {
	for _, child := range act.Children {
		article, ok := child.(*structure.Article)
		if !ok {
			continue
		}
		for i := range article.Children {
			if err := walkParagraph(&article.Children[i], v); err != nil {
				return errctx.Wrap(err, "Article", article.Identifier.String())
			}
		}
	}
	return nil
}

// WalkMut is Walk's mutating counterpart.
func WalkMut(act *structure.Act, v MutVisitor) error {
	for _, child := range act.Children {
		article, ok := child.(*structure.Article)
		if !ok {
			continue
		}
		for i := range article.Children {
			if err := walkParagraphMut(&article.Children[i], v); err != nil {
				return errctx.Wrap(err, "Article", article.Identifier.String())
			}
		}
	}
	return nil
}

func walkParagraph(p *structure.Paragraph, v Visitor) error {
	label := "(unlabelled)"
	if p.Identifier != nil {
		label = p.Identifier.String()
	}
	if err := walkSAEBody(p.Body, &p.Semantic, v); err != nil {
		return errctx.Wrap(err, "Paragraph", label)
	}
	return nil
}

func walkParagraphMut(p *structure.Paragraph, v MutVisitor) error {
	label := "(unlabelled)"
	if p.Identifier != nil {
		label = p.Identifier.String()
	}
	if err := walkSAEBodyMut(&p.Body, &p.Semantic, v); err != nil {
		return errctx.Wrap(err, "Paragraph", label)
	}
	return nil
}

// walkChildren dispatches on the concrete SAEChildren type, descending
// into points and their subpoints. QuotedBlock, BlockAmendment and
// StructuralBlockAmendment children are intentionally not descended
// into.
func walkChildren(c structure.SAEChildren, v Visitor) error {
	switch ch := c.(type) {
	case structure.AlphabeticPointList:
		for i := range ch {
			if err := walkPoint(ch[i].Identifier.String(), "AlphabeticPoint", ch[i].Body, &ch[i].Semantic, v); err != nil {
				return err
			}
		}
	case structure.NumericPointList:
		for i := range ch {
			if err := walkPoint(ch[i].Identifier.String(), "NumericPoint", ch[i].Body, &ch[i].Semantic, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkChildrenMut(c structure.SAEChildren, v MutVisitor) error {
	switch ch := c.(type) {
	case structure.AlphabeticPointList:
		for i := range ch {
			if err := walkPointMut(ch[i].Identifier.String(), "AlphabeticPoint", &ch[i].Body, &ch[i].Semantic, v); err != nil {
				return err
			}
		}
	case structure.NumericPointList:
		for i := range ch {
			if err := walkPointMut(ch[i].Identifier.String(), "NumericPoint", &ch[i].Body, &ch[i].Semantic, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkPoint(id, kind string, body structure.SAEBody, semantic *structure.SemanticInfo, v Visitor) error {
	if err := walkSAEBody(body, semantic, v); err != nil {
		return errctx.Wrap(err, kind, id)
	}
	return nil
}

func walkPointMut(id, kind string, body *structure.SAEBody, semantic *structure.SemanticInfo, v MutVisitor) error {
	if err := walkSAEBodyMut(body, semantic, v); err != nil {
		return errctx.Wrap(err, kind, id)
	}
	return nil
}

func walkSubpoints(c structure.SAEChildren, v Visitor) error {
	switch ch := c.(type) {
	case structure.AlphabeticSubpointList:
		for i := range ch {
			text, ok := ch[i].Body.(structure.TextBody)
			if !ok {
				return fmt.Errorf("subpoint %s body must be text, got %T", ch[i].Identifier, ch[i].Body)
			}
			if err := v.OnText(string(text), &ch[i].Semantic); err != nil {
				return errctx.Wrap(err, "AlphabeticSubpoint", ch[i].Identifier.String())
			}
		}
	case structure.NumericSubpointList:
		for i := range ch {
			text, ok := ch[i].Body.(structure.TextBody)
			if !ok {
				return fmt.Errorf("subpoint %s body must be text, got %T", ch[i].Identifier, ch[i].Body)
			}
			if err := v.OnText(string(text), &ch[i].Semantic); err != nil {
				return errctx.Wrap(err, "NumericSubpoint", ch[i].Identifier.String())
			}
		}
	}
	return nil
}

func walkSubpointsMut(c structure.SAEChildren, v MutVisitor) error {
	switch ch := c.(type) {
	case structure.AlphabeticSubpointList:
		for i := range ch {
			text, ok := ch[i].Body.(structure.TextBody)
			if !ok {
				return fmt.Errorf("subpoint %s body must be text, got %T", ch[i].Identifier, ch[i].Body)
			}
			s := string(text)
			if err := v.OnText(&s, &ch[i].Semantic); err != nil {
				return errctx.Wrap(err, "AlphabeticSubpoint", ch[i].Identifier.String())
			}
			ch[i].Body = structure.TextBody(s)
		}
	case structure.NumericSubpointList:
		for i := range ch {
			text, ok := ch[i].Body.(structure.TextBody)
			if !ok {
				return fmt.Errorf("subpoint %s body must be text, got %T", ch[i].Identifier, ch[i].Body)
			}
			s := string(text)
			if err := v.OnText(&s, &ch[i].Semantic); err != nil {
				return errctx.Wrap(err, "NumericSubpoint", ch[i].Identifier.String())
			}
			ch[i].Body = structure.TextBody(s)
		}
	}
	return nil
}

func walkSAEBody(body structure.SAEBody, semantic *structure.SemanticInfo, v Visitor) error {
	switch b := body.(type) {
	case structure.TextBody:
		return v.OnText(string(b), semantic)
	case structure.ChildrenBody:
		if err := v.OnEnter(b.Intro, b.WrapUp, semantic); err != nil {
			return fmt.Errorf("on_enter call failed: %w", err)
		}
		if err := walkChildren(b.Children, v); err != nil {
			return err
		}
		if err := walkSubpoints(b.Children, v); err != nil {
			return err
		}
		if err := v.OnExit(b.Intro, b.WrapUp, semantic); err != nil {
			return fmt.Errorf("on_exit call failed: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown SAE body type %T", body)
}

func walkSAEBodyMut(body *structure.SAEBody, semantic *structure.SemanticInfo, v MutVisitor) error {
	switch b := (*body).(type) {
	case structure.TextBody:
		s := string(b)
		if err := v.OnText(&s, semantic); err != nil {
			return err
		}
		*body = structure.TextBody(s)
		return nil
	case structure.ChildrenBody:
		if err := v.OnEnter(&b.Intro, &b.WrapUp, semantic); err != nil {
			return fmt.Errorf("on_enter call failed: %w", err)
		}
		if err := walkChildrenMut(b.Children, v); err != nil {
			return err
		}
		if err := walkSubpointsMut(b.Children, v); err != nil {
			return err
		}
		if err := v.OnExit(&b.Intro, &b.WrapUp, semantic); err != nil {
			return fmt.Errorf("on_exit call failed: %w", err)
		}
		*body = b
		return nil
	}
	return fmt.Errorf("unknown SAE body type %T", *body)
}
