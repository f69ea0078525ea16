// Package model defines the field descriptors shared by the form builder and
// the parser. A Field is one declared form control (or structural marker such
// as a fieldset opener); a FormModel is the ordered sequence the parser
// renders. Field types form a closed vocabulary: raw strings become a
// FieldType only through ParseFieldType, which rejects unknown tags with
// ErrUnknownFieldType. Selection rules shared by select, checkbox and radio
// rendering live on Field so every renderer agrees on which option is
// pre-selected in add and edit mode.
package model
