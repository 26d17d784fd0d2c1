package main

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/widgets"
)

const (
	rowHeight   = 26
	labelWidth  = 110
	formPadding = 16
)

// form is the demo's data model and the widgets bound to it.
type form struct {
	mgr *widgets.Manager

	name, email, password, notes string
	age                          int
	country, plan                int
	volume                       float32
	newsletter                   bool

	status  *widgets.Label
	confirm *widgets.Dialog
}

var (
	countries = []string{"Belgium", "Canada", "Germany", "Japan", "Portugal", "Sweden", "United Kingdom", "United States"}
	plans     = []string{"Free", "Pro", "Team"}
)

// buildForm lays out the form in a w x h window and registers it with mgr.
func buildForm(mgr *widgets.Manager, w, h float32) *form {
	f := &form{mgr: mgr, age: 30, volume: 0.5, country: -1}

	root := widgets.NewPanel(widgets.Rect{W: w, H: h})
	left := widgets.NewGroupBox(widgets.Rect{X: formPadding, Y: formPadding, W: w/2 - formPadding*1.5, H: h - formPadding*2 - 40}, "Account")
	right := widgets.NewGroupBox(widgets.Rect{X: w/2 + formPadding/2, Y: formPadding, W: w/2 - formPadding*1.5, H: h - formPadding*2 - 40}, "Preferences")

	col := widgets.Column(left.ContentRect(mgr.Context()), widgets.Gap(widgets.SpaceSM), widgets.PaddingXY(0, widgets.SpaceSM))
	field := func(label string, build func(r widgets.Rect) widgets.Widget) {
		row := widgets.Row(col.Next(rowHeight), widgets.Gap(widgets.SpaceSM))
		left.Add(widgets.NewLabel(row.Next(labelWidth), label))
		left.Add(build(row.Next(row.Remaining())))
	}
	field("Name", func(r widgets.Rect) widgets.Widget {
		return widgets.NewTextField(r, widgets.Ref(&f.name), widgets.WithPlaceholder("Full name"), widgets.WithMaxLength(40))
	})
	field("Email", func(r widgets.Rect) widgets.Widget {
		return widgets.NewTextField(r, widgets.Ref(&f.email), widgets.WithPlaceholder("you@example.com"), widgets.WithInputType(widgets.InputEmail))
	})
	field("Password", func(r widgets.Rect) widgets.Widget {
		return widgets.NewTextField(r, widgets.Ref(&f.password), widgets.Password())
	})
	field("Age", func(r widgets.Rect) widgets.Widget {
		return widgets.NewSpinner(r, widgets.Ref(&f.age), widgets.WithRange(0, 130))
	})
	field("Country", func(r widgets.Rect) widgets.Widget {
		return widgets.NewComboBox(r, countries, widgets.Ref(&f.country), widgets.WithMaxDropdownHeight(rowHeight*5))
	})
	left.Add(widgets.NewLabel(col.Next(rowHeight), "Notes"))
	left.Add(widgets.NewTextArea(col.Next(col.Remaining()), widgets.Ref(&f.notes), widgets.WithPlaceholder("Anything else?")))

	col = widgets.Column(right.ContentRect(mgr.Context()), widgets.Gap(widgets.SpaceSM), widgets.PaddingXY(0, widgets.SpaceSM))
	right.Add(widgets.NewLabel(col.Next(rowHeight), "Plan"))
	right.Add(widgets.NewRadioGroupWithItems(col.Next(rowHeight*float32(len(plans))), plans, widgets.Ref(&f.plan)))
	right.Add(widgets.NewLabel(col.Next(rowHeight), "Volume"))
	right.Add(widgets.NewSlider(col.Next(rowHeight), widgets.Ref(&f.volume), widgets.WithRange(0, 1), widgets.WithStep(0.05)))
	right.Add(widgets.NewCheckbox(col.Next(rowHeight), "Subscribe to the newsletter", widgets.Ref(&f.newsletter)))
	right.Add(widgets.NewWrappedLabel(col.Next(rowHeight*3),
		"Tab moves focus, Ctrl+S submits, F2 switches theme, Ctrl+Q quits."))

	buttons := widgets.Row(widgets.Rect{X: formPadding, Y: h - formPadding - 32, W: w - formPadding*2, H: 32}, widgets.Gap(widgets.SpaceSM))
	f.status = widgets.NewLabel(buttons.Next(w-formPadding*2-200-widgets.SpaceSM*2), "")
	submit := widgets.NewButton(buttons.Next(100), "Submit", f.submit)
	reset := widgets.NewButton(buttons.Next(100), "Reset", f.reset)

	root.Add(left, right, f.status, submit, reset)
	mgr.AddElement(root)

	dw, dh := float32(360), float32(180)
	f.confirm = widgets.NewDialog(widgets.Rect{X: (w - dw) / 2, Y: (h - dh) / 2, W: dw, H: dh}, "Submit", "", f.answered)
	return f
}

// submit asks for confirmation, or reports what is missing.
func (f *form) submit() {
	if missing := f.missing(); len(missing) > 0 {
		f.status.SetText("Missing: " + strings.Join(missing, ", "))
		return
	}
	f.confirm.SetMessage(fmt.Sprintf("Create a %s account for %s?", plans[f.plan], f.name))
	f.mgr.ShowPopup(f.confirm)
}

func (f *form) missing() []string {
	var out []string
	if strings.TrimSpace(f.name) == "" {
		out = append(out, "name")
	}
	if !strings.Contains(f.email, "@") {
		out = append(out, "email")
	}
	if f.country < 0 {
		out = append(out, "country")
	}
	return out
}

func (f *form) answered(ok bool) {
	if ok {
		f.status.SetText("Submitted " + f.name + " (" + countries[f.country] + ")")
	} else {
		f.status.SetText("Cancelled")
	}
}

func (f *form) reset() {
	f.name, f.email, f.password, f.notes = "", "", "", ""
	f.age, f.country, f.plan, f.volume, f.newsletter = 30, -1, 0, 0.5, false
	f.status.SetText("")
}
