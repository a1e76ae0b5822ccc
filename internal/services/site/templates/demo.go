package templates

import (
	"github.com/baucmind/site/internal/lead"
	"github.com/baucmind/site/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// DemoDismissAfterMillis is how long the success state stays open.
const DemoDismissAfterMillis = 3000

// DemoForm is the state of the demo request dialog.
type DemoForm struct {
	Fields lead.Fields
	// FieldError marks the first invalid field.
	FieldError *lead.FieldError
	// Notice is a localized submission failure; the visitor may retry.
	Notice  string
	Receipt *lead.Receipt
}

var companySizes = []string{"1-10", "11-50", "51-200", "200+"}

var preferredTimes = []string{"morning", "afternoon", "evening"}

// DemoModal renders the demo request dialog in the modal slot.
func DemoModal(page PageContext, form DemoForm) g.Node {
	return Div(ID("modal"), Class("modal-root"),
		A(Href(routepath.Root), Class("modal-backdrop"), g.Attr("data-dismiss", ""), g.Attr("aria-hidden", "true")),
		Div(Class("modal"), Role("dialog"), g.Attr("aria-modal", "true"), g.Attr("aria-labelledby", "demo-title"),
			A(Href(routepath.Root), Class("modal-close"), g.Attr("data-dismiss", ""),
				g.Attr("aria-label", T(page.Loc, "leads.demo.close")),
				g.Text("×"),
			),
			H2(ID("demo-title"), g.Text(T(page.Loc, "leads.demo.title"))),
			g.Iff(form.Receipt != nil, func() g.Node { return demoSuccess(page, *form.Receipt) }),
			g.Iff(form.Receipt == nil, func() g.Node { return demoRequestForm(page, form) }),
		),
	)
}

func demoSuccess(page PageContext, receipt lead.Receipt) g.Node {
	return Div(Class("demo-success"), g.Attr("data-dismiss-after", itoa(DemoDismissAfterMillis)), Role("status"),
		H3(g.Text(T(page.Loc, "leads.demo.success.title"))),
		P(g.Text(T(page.Loc, "leads.demo.success.body"))),
		P(Class("muted"), g.Text(T(page.Loc, "leads.demo.success.reference", receipt.Reference))),
	)
}

func demoRequestForm(page PageContext, form DemoForm) g.Node {
	f := form.Fields
	return Form(Method("post"), Action(routepath.DemoRequest), Class("demo-form"),
		g.Attr("hx-post", routepath.DemoRequest),
		g.Attr("hx-target", "#modal"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type=submit]"),
		P(g.Text(T(page.Loc, "leads.demo.intro"))),
		g.If(form.Notice != "", P(Class("notice notice-error"), Role("alert"), g.Text(form.Notice))),
		demoInput(page, form, lead.FieldName, "text", f.Name, true),
		demoInput(page, form, lead.FieldEmail, "email", f.Email, true),
		Div(Class("grid grid-2"),
			demoInput(page, form, lead.FieldCompany, "text", f.Company, false),
			demoInput(page, form, lead.FieldRole, "text", f.Role, false),
			demoInput(page, form, lead.FieldPhone, "tel", f.Phone, false),
			demoSelect(page, lead.FieldCompanySize, f.CompanySize, companySizes, false),
			demoInput(page, form, lead.FieldPreferredDate, "date", f.PreferredDate, false),
			demoSelect(page, lead.FieldPreferredTime, f.PreferredTime, preferredTimes, true),
		),
		demoTextarea(page, lead.FieldCurrentChallenges, f.CurrentChallenges),
		demoTextarea(page, lead.FieldMessage, f.Message),
		Button(Type("submit"), Class("btn btn-primary btn-block"),
			Span(Class("when-idle"), g.Text(T(page.Loc, "leads.demo.submit"))),
			Span(Class("when-busy"), g.Text(T(page.Loc, "leads.demo.submitting"))),
		),
	)
}

func demoInput(page PageContext, form DemoForm, name, kind, value string, required bool) g.Node {
	id := "demo-" + name
	invalid := form.FieldError != nil && form.FieldError.Field == name
	return Div(Class(classes("field", invalidClass(invalid))),
		Label(For(id), g.Text(T(page.Loc, "leads.field."+name))),
		Input(ID(id), Type(kind), Name(name), Value(value),
			g.If(required, Required()),
			g.If(invalid, g.Attr("aria-invalid", "true")),
		),
		g.Iff(invalid, func() g.Node {
			return Small(Class("field-error"), g.Text(T(page.Loc, "leads.error."+form.FieldError.Reason)))
		}),
	)
}

func demoSelect(page PageContext, name, value string, options []string, localized bool) g.Node {
	id := "demo-" + name
	return Div(Class("field"),
		Label(For(id), g.Text(T(page.Loc, "leads.field."+name))),
		Select(ID(id), Name(name),
			Option(Value(""), g.Text(T(page.Loc, "leads.field.choose"))),
			g.Map(options, func(option string) g.Node {
				label := option
				if localized {
					label = T(page.Loc, "leads.field."+name+"."+option)
				}
				return Option(Value(option), g.If(option == value, Selected()), g.Text(label))
			}),
		),
	)
}

func demoTextarea(page PageContext, name, value string) g.Node {
	id := "demo-" + name
	return Div(Class("field"),
		Label(For(id), g.Text(T(page.Loc, "leads.field."+name))),
		Textarea(ID(id), Name(name), g.Attr("rows", "3"), g.Text(value)),
	)
}

func invalidClass(invalid bool) string {
	if invalid {
		return "is-invalid"
	}
	return ""
}
