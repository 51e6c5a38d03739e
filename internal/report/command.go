package report

// CommandPrefix is the fixed template the two report dates are appended to.
// The dates follow each other with no separator; the consuming report tool
// expects exactly this layout.
const CommandPrefix = "S4DMRPTW /SFV5PTDRNG.FMT /T8 /SB1 /PD33"

// ComposeCommand builds the report generation command from two already
// normalized MM/DD/YY date strings. It performs no validation or alteration
// of its inputs and never fails.
func ComposeCommand(startDate, endDate string) string {
	return CommandPrefix + startDate + endDate
}
