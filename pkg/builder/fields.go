package builder

import (
	"strconv"

	"github.com/goliatone/go-mform/pkg/model"
)

const defaultMultiSelectSize = 3

// AddInputField declares an input of typ, honouring the supplied options.
func (b *Builder) AddInputField(typ model.FieldType, id string, options ...ElementOption) *Element {
	return b.AddElement(typ, id, options...)
}

func (b *Builder) AddHiddenField(id string, options ...ElementOption) *Element {
	return b.AddElement(model.FieldTypeHidden, id, options...)
}

func (b *Builder) AddTextField(id string, options ...ElementOption) *Element {
	return b.AddElement(model.FieldTypeText, id, options...)
}

func (b *Builder) AddTextAreaField(id string, options ...ElementOption) *Element {
	return b.AddElement(model.FieldTypeTextarea, id, options...)
}

func (b *Builder) AddTextReadOnlyField(id string, options ...ElementOption) *Element {
	return b.AddElement(model.FieldTypeTextReadonly, id, options...)
}

func (b *Builder) AddTextAreaReadOnlyField(id string, options ...ElementOption) *Element {
	return b.AddElement(model.FieldTypeTextareaReadonly, id, options...)
}

func (b *Builder) AddMarkitupField(id string, options ...ElementOption) *Element {
	return b.AddElement(model.FieldTypeMarkitup, id, options...)
}

// AddOptionField declares an option based field of typ.
func (b *Builder) AddOptionField(typ model.FieldType, id string, opts []model.Option, options ...ElementOption) *Element {
	return b.AddElement(typ, id, options...).SetOptions(opts)
}

// AddSelectField declares a select. size is applied only when greater than 1.
func (b *Builder) AddSelectField(id string, opts []model.Option, size int, options ...ElementOption) *Element {
	el := b.AddOptionField(model.FieldTypeSelect, id, opts, options...)
	if size > 1 {
		el.SetSize(strconv.Itoa(size))
	}
	return el
}

// AddMultiSelectField declares a multiple select submitting a comma joined
// value. size defaults to 3.
func (b *Builder) AddMultiSelectField(id string, opts []model.Option, size int, options ...ElementOption) *Element {
	if size <= 0 {
		size = defaultMultiSelectSize
	}
	return b.AddOptionField(model.FieldTypeMultiselect, id, opts, options...).
		SetMultiple().
		SetSize(strconv.Itoa(size))
}

func (b *Builder) AddCheckboxField(id string, opts []model.Option, options ...ElementOption) *Element {
	return b.AddOptionField(model.FieldTypeCheckbox, id, opts, options...)
}

// AddToggleCheckboxField declares a checkbox styled as a toggle switch.
func (b *Builder) AddToggleCheckboxField(id string, opts []model.Option, options ...ElementOption) *Element {
	return b.AddCheckboxField(id, opts, options...).SetAttribute("data-mform-toggle", "toggle")
}

func (b *Builder) AddRadioField(id string, opts []model.Option, options ...ElementOption) *Element {
	return b.AddOptionField(model.FieldTypeRadio, id, opts, options...)
}

func (b *Builder) AddLinkField(id string, options ...ElementOption) *Element {
	return b.AddElement(model.FieldTypeLink, id, options...)
}

func (b *Builder) AddLinklistField(id string, options ...ElementOption) *Element {
	return b.AddElement(model.FieldTypeLinklist, id, options...)
}

func (b *Builder) AddMediaField(id string, options ...ElementOption) *Element {
	return b.AddElement(model.FieldTypeMedia, id, options...)
}

func (b *Builder) AddMedialistField(id string, options ...ElementOption) *Element {
	return b.AddElement(model.FieldTypeMedialist, id, options...)
}

func (b *Builder) AddImagelistField(id string, options ...ElementOption) *Element {
	return b.AddElement(model.FieldTypeImglist, id, options...)
}

func (b *Builder) AddCustomLinkField(id string, options ...ElementOption) *Element {
	return b.AddElement(model.FieldTypeCustomLink, id, options...)
}

// AddHtml emits raw markup.
func (b *Builder) AddHtml(html string) *Element {
	return b.AddElement(model.FieldTypeHTML, "", Value(html))
}

func (b *Builder) AddHeadline(text string) *Element {
	return b.AddElement(model.FieldTypeHeadline, "", Value(text))
}

func (b *Builder) AddDescription(text string) *Element {
	return b.AddElement(model.FieldTypeDescription, "", Value(text))
}

// AddAlert emits an alert box with the alert-<key> class.
func (b *Builder) AddAlert(key, text string) *Element {
	return b.AddElement(model.FieldTypeAlert, "", Value(text)).SetAttribute("class", "alert-"+key)
}

func (b *Builder) AddAlertInfo(text string) *Element {
	return b.AddAlert("info", text)
}

func (b *Builder) AddAlertWarning(text string) *Element {
	return b.AddAlert("warning", text)
}

func (b *Builder) AddAlertDanger(text string) *Element {
	return b.AddAlert("danger", text)
}

// AddAlertError adds an alert with class alert-error. Themes that only style
// alert-danger need an alias rule for it.
func (b *Builder) AddAlertError(text string) *Element {
	return b.AddAlert("error", text)
}

func (b *Builder) AddAlertSuccess(text string) *Element {
	return b.AddAlert("success", text)
}
