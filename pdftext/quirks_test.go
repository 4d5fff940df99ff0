/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixCharacterCodingQuirks(t *testing.T) {
	assert.Equal(t, 'Ő', fixCharacterCodingQuirks('Õ'))
	assert.Equal(t, 'ő', fixCharacterCodingQuirks('õ'))
	assert.Equal(t, 'Ű', fixCharacterCodingQuirks('Û'))
	assert.Equal(t, 'ű', fixCharacterCodingQuirks('û'))
	assert.Equal(t, ' ', fixCharacterCodingQuirks(' '))
	assert.Equal(t, 'x', fixCharacterCodingQuirks('x'))
}
