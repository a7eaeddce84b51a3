// Package analysis implements the customer-shopping statistics batch
// job: it loads a transactions CSV and reports population by gender,
// total sales by gender, payment-method usage, and the day with the
// highest total sales. The job is an ordinary data transformation with
// no interface into the transfer pipeline; it shares only the ambient
// stack (logging, errors, config).
package analysis
