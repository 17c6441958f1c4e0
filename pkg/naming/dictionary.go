package naming

// Built-in display names for the order and commission tracking schema.
// Keys are lower-case. These tables are read-only; Default copies them.
var defaultTables = map[string]string{
	"bookings":            "Bookings",
	"bookinglineitems":    "Backlog Items",
	"bookingadjustments":  "Booking Adjustments",
	"commissions":         "Commissions",
	"commissionpayments":  "Commission Payments",
	"commissionplans":     "Commission Plans",
	"commissionrates":     "Commission Rates",
	"salesreps":           "Sales Representatives",
	"salesrepterritories": "Rep Territories",
	"territories":         "Territories",
	"customers":           "Customers",
	"orders":              "Orders",
	"orderlines":          "Order Lines",
	"invoices":            "Invoices",
	"invoicelines":        "Invoice Lines",
	"products":            "Products",
	"productlines":        "Product Lines",
	"shipments":           "Shipments",
	"payperiods":          "Pay Periods",
	"splits":              "Commission Splits",
}

var defaultFields = map[string]string{
	"createddate":      "Created Date",
	"modifieddate":     "Last Modified",
	"bookingdate":      "Booking Date",
	"bookingid":        "Booking Number",
	"orderid":          "Order Number",
	"ordernumber":      "Order Number",
	"orderdate":        "Order Date",
	"invoiceid":        "Invoice Number",
	"invoicedate":      "Invoice Date",
	"shipdate":         "Ship Date",
	"paiddate":         "Paid Date",
	"duedate":          "Due Date",
	"customerid":       "Customer",
	"customername":     "Customer Name",
	"salesrepid":       "Sales Rep",
	"salesrepname":     "Sales Rep Name",
	"territoryid":      "Territory",
	"productid":        "Product",
	"productline":      "Product Line",
	"quantity":         "Quantity",
	"qty":              "Quantity",
	"unitprice":        "Unit Price",
	"grossamount":      "Gross Amount",
	"netamount":        "Net Amount",
	"extendedamount":   "Extended Amount",
	"commissionrate":   "Commission Rate",
	"commissionamount": "Commission Amount",
	"splitpercent":     "Split %",
	"payperiodid":      "Pay Period",
	"status":           "Status",
	"isactive":         "Active",
	"isdeleted":        "Deleted",
}
