// Package builder declares forms through a chained API.
//
// Every Add call appends one descriptor and returns an *Element handle; Set
// calls on the handle configure that descriptor only. The handle embeds the
// Builder, so declarations chain without hidden cursor state:
//
//	b := builder.New(builder.WithMode(model.ModeEdit), builder.WithValues(values))
//	b.AddTextField("1").SetLabel("Title").
//		AddSelectField("2", []model.Option{model.Opt("a", "A")}, 0).SetLabel("Kind")
//
// Builder calls never fail. Unusable input such as a broken SQL option query
// or an unsupported subform is logged and treated as absent.
package builder
