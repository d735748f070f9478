package siteindex_test

import (
	"testing"

	"github.com/fwojciec/siteindex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := siteindex.Errorf(siteindex.ENOTFOUND, "page %q not found", "test")

	assert.Equal(t, siteindex.ENOTFOUND, siteindex.ErrorCode(err))
	assert.Equal(t, "page \"test\" not found", siteindex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siteindex.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siteindex.ErrorMessage(nil))
}

func TestPageRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires a URL", func(t *testing.T) {
		t.Parallel()

		rec := &siteindex.PageRecord{Title: "Alpha"}

		err := rec.Validate()

		assert.Equal(t, siteindex.EINVALID, siteindex.ErrorCode(err))
	})

	t.Run("accepts a complete record", func(t *testing.T) {
		t.Parallel()

		rec := &siteindex.PageRecord{Title: "Alpha", URL: "a.htm", Content: "text"}

		assert.NoError(t, rec.Validate())
	})
}
