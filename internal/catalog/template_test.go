package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateRender(t *testing.T) {
	fields := Fields{
		Title:   "_title_0_",
		Season:  3,
		Episode: 7,
		Name:    "_name_2_",
		Tags:    "[DC]",
		Ext:     ".txt",
	}

	tests := []struct {
		tmpl Template
		want string
	}{
		{"{title}s{season}e{episode}{name}{tags}{ext}", "_title_0_s3e7_name_2_[DC].txt"},
		{"{title}Season{season}Episode{episode}{name}{tags}{ext}", "_title_0_Season3Episode7_name_2_[DC].txt"},
		{"{title}{season}x{episode}{name}{tags}{ext}", "_title_0_3x7_name_2_[DC].txt"},
		{"{title}{season}{episode:02d}{name}{tags}{ext}", "_title_0_307_name_2_[DC].txt"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tmpl), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tmpl.Render(fields))
		})
	}
}

func TestTemplateRenderEmptyFields(t *testing.T) {
	tmpl := Template("{title}{season}{episode:02d}{name}{tags}{ext}")
	assert.Equal(t, "010", tmpl.Render(Fields{Season: 0, Episode: 10}))
	assert.Equal(t, "500", tmpl.Render(Fields{Season: 5}))
}

func TestTemplateValidate(t *testing.T) {
	for _, tmpl := range Default().Templates {
		assert.NoError(t, tmpl.Validate(), string(tmpl))
	}

	assert.Error(t, Template("{title}{ext}").Validate())
	assert.Error(t, Template("{season}{ext}").Validate())
	assert.NoError(t, Template("{season}{episode:02d}{ext}").Validate())
}
