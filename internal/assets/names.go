package assets

// DefaultStyleName is the name of the built-in stylesheet, written to the
// output root as styles.css.
const DefaultStyleName = "styles"

// Page and partial template names.
const (
	TemplateIndex         = "index"
	TemplateBlogIndex     = "blog_index"
	TemplatePost          = "post"
	TemplateProjectsIndex = "projects_index"
	TemplateProject       = "project"
	TemplateAnalytics     = "analytics"
)

// TemplateNames lists every template a site build needs.
var TemplateNames = []string{
	TemplateIndex,
	TemplateBlogIndex,
	TemplatePost,
	TemplateProjectsIndex,
	TemplateProject,
	TemplateAnalytics,
}
