// Package dsl offers a fluent builder for constructing presets in code,
// the programmatic counterpart of an external preset editor.
//
//	preset := dsl.NewPreset("portrait").
//		Add(
//			dsl.Leaf("base", "1girl", "smile").All().Build(),
//			dsl.Group("style",
//				dsl.Leaf("medium", "watercolor", "oil").SingleRandom().Build(),
//			).Chance(0.7).Brackets(0, 2).Build(),
//		).
//		Build()
package dsl
