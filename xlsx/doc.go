// Package xlsx reads and writes the spreadsheet formats around the classmix
// optimizer.
//
// Three workbook shapes are involved:
//
//   - The source workbook: one or more sheets of descriptive student
//     attributes (gender, language proficiency, performance grade, friends
//     and the lock flags). Read by ReadSourceRoster.
//   - The filled workbook: the team template merged with those attributes,
//     plus the ΚΑΤΗΓΟΡΙΟΠΟΙΗΣΗ pairs sheet and the SINGLE sheet. Produced by
//     Fill, consumed by ReadRoster.
//   - The plan workbook: the optimized placement with per-team statistics
//     and the applied-swaps log. Produced by WritePlan.
//
// Sheet headers are matched leniently: spelling variants with spaces or
// underscores, in Greek or English, resolve to the same canonical column.
//
// Quick start:
//
//	if err := xlsx.Fill("students.xlsx", "template.xlsx", "filled.xlsx"); err != nil {
//		log.Fatal(err)
//	}
//
//	roster, err := xlsx.ReadRoster("filled.xlsx")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	opt, _ := classmix.New(nil)
//	result, err := opt.Optimize(context.Background(), roster)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	targets := classmix.DefaultConfig().Targets
//	if err := xlsx.WritePlan("plan.xlsx", roster, result, targets); err != nil {
//		log.Fatal(err)
//	}
package xlsx
