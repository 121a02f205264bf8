// Package cgt reads capital-gains transaction logs.
//
// A transaction log is plain text with one transaction per line:
//
//	KIND DATE ASSET AMOUNT PRICE EXPENSES
//	BUY  09/06/2020 FOO 100 1.50 0.00
//
// KIND is BUY, SELL or ADJ (a Section 104 holding adjustment), DATE is
// dd/MM/yyyy and the three numbers are exact decimals. Blank lines and lines
// starting with '#' are ignored.
//
// A Parser turns such a log into Transactions, all or nothing: the first
// invalid line is reported as a *ParseError and no transaction is returned.
// Computing gains from the transactions is left to the caller.
package cgt
