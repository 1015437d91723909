package main

import "sort"

// Aggregate groups normalized transactions by account code alone: BS and USD
// sheets feed the same line after currency normalization. Aggregation is
// commutative over the code, so input order between sheets does not matter.
// Transactions without a code stay out of account lines but still feed the
// per-bank sheet totals and the report totals.
func Aggregate(transactions []Transaction, master AccountMaster, pair CurrencyPair) PnLReport {
	lines := make(map[string]*AggregatedAccountLine)
	sheetTotals := make(map[string]*SheetTotal)
	var sheetOrder []string
	report := PnLReport{}

	for i := range transactions {
		t := &transactions[i]
		net := t.Net()
		netBs, netUsd := pair.Normalize(net, t.SourceCurrency)

		// Per-bank totals, codeless rows included.
		total, ok := sheetTotals[t.SourceSheet]
		if !ok {
			total = &SheetTotal{Sheet: t.SourceSheet}
			sheetTotals[t.SourceSheet] = total
			sheetOrder = append(sheetOrder, t.SourceSheet)
		}
		total.NetBs = total.NetBs.Add(netBs)
		total.NetUsd = total.NetUsd.Add(netUsd)

		// Run totals for the INGRESOS/EGRESOS/UTILIDAD summary.
		incomeBs, _ := pair.Normalize(t.IncomeAmount, t.SourceCurrency)
		expenseBs, _ := pair.Normalize(t.ExpenseAmount, t.SourceCurrency)
		report.TotalIncomeBs = report.TotalIncomeBs.Add(incomeBs)
		report.TotalExpenseBs = report.TotalExpenseBs.Add(expenseBs)
		report.TotalBs = report.TotalBs.Add(netBs)
		report.TotalUsd = report.TotalUsd.Add(netUsd)

		if t.AccountCode == "" {
			continue
		}
		line, ok := lines[t.AccountCode]
		if !ok {
			line = &AggregatedAccountLine{
				AccountCode: t.AccountCode,
				AccountName: master.NameOf(t.AccountCode),
			}
			lines[t.AccountCode] = line
		}
		// Native columns keep the unconverted value per source currency.
		if t.SourceCurrency == CurrencyUsd {
			line.AmountUsd = line.AmountUsd.Add(net)
		} else {
			line.AmountBs = line.AmountBs.Add(net)
		}
	}

	report.Lines = make([]AggregatedAccountLine, 0, len(lines))
	for _, line := range lines {
		// Consolidated BS merges both origins: BS + USD×R.
		line.ConsolidatedBs = line.AmountBs.Add(pair.ToBs(line.AmountUsd))
		line.ConsolidatedUsd = pair.ToUsd(line.ConsolidatedBs)
		report.Lines = append(report.Lines, *line)
	}
	sortAccountLines(report.Lines)

	report.SheetTotals = make([]SheetTotal, 0, len(sheetOrder))
	for _, sheet := range sheetOrder {
		report.SheetTotals = append(report.SheetTotals, *sheetTotals[sheet])
	}
	return report
}

// sortAccountLines orders by code with income-class codes listed before
// expense-class ones, as the P&L is presented.
func sortAccountLines(lines []AggregatedAccountLine) {
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].IsIncomeClass() != lines[j].IsIncomeClass() {
			return lines[i].IsIncomeClass()
		}
		return lines[i].AccountCode < lines[j].AccountCode
	})
}

// UndefinedCodeTransactions lists transactions whose code is missing from
// the account master, so template errors in the GYP tab are visible.
func UndefinedCodeTransactions(transactions []Transaction, master AccountMaster) []Transaction {
	var undefined []Transaction
	for _, t := range transactions {
		if t.AccountCode == "" {
			continue
		}
		if _, ok := master[t.AccountCode]; !ok {
			undefined = append(undefined, t)
		}
	}
	return undefined
}
