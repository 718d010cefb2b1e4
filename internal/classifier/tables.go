package classifier

import "github.com/ledgerkeep/ledgerkeep/internal/models"

// CategoryEntry maps a category to the keywords that imply it. Entries are
// evaluated in declared order; within an entry any keyword hit assigns the
// category.
type CategoryEntry struct {
	Category string
	Keywords []string
}

// TagCheck appends Tag when any of its keywords appear in the uppercased
// description. Checks are independent: several can fire for one
// transaction.
type TagCheck struct {
	Tag      string
	Keywords []string
}

// Tables holds the hardcoded classification data for one bank family.
// The matching algorithm is shared; only the data differs between
// families.
type Tables struct {
	Categories []CategoryEntry
	Tags       []TagCheck
}

// DefaultTables returns the classification tables used for the generic
// columnar bank family and as the seed for user rule stores.
func DefaultTables() Tables {
	return Tables{
		Categories: []CategoryEntry{
			{"Salary", []string{"salary", "sal credit", "payroll"}},
			{"Investment", []string{"zerodha", "groww", "mutual fund", "sip ", "indian clearing corp"}},
			{"Rent", []string{"rent"}},
			{"Food", []string{"swiggy", "zomato", "restaurant", "eatfit", "dominos", "mcdonald"}},
			{"Groceries", []string{"bigbasket", "blinkit", "zepto", "dmart", "grofers", "supermarket"}},
			{"Shopping", []string{"amazon", "flipkart", "myntra", "ajio", "decathlon"}},
			{"Transport", []string{"uber", "ola", "irctc", "redbus", "petrol", "fuel", "fastag"}},
			{"Entertainment", []string{"netflix", "bookmyshow", "spotify", "hotstar", "sunnxt", "prime video"}},
			{"Utilities", []string{"electricity", "bescom", "airtel", "jio", "vodafone", "broadband", "recharge"}},
			{"Health", []string{"pharmacy", "apollo", "medplus", "hospital", "clinic", "1mg"}},
			{"Insurance", []string{"lic of india", "insurance", "premium"}},
			{"Fees", []string{"charges", "chrg", "gst", "sms chgs"}},
		},
		Tags: []TagCheck{
			{"UPI", []string{"UPI"}},
			{"SALARY", []string{"SALARY", "SAL CREDIT"}},
			{"ATM", []string{"ATM", "CASH WDL", "NWD"}},
			{"EMI", []string{"EMI", "ACH D-", "LOAN"}},
			{"SUBSCRIPTION", []string{"NETFLIX", "SPOTIFY", "HOTSTAR", "PRIME"}},
			{"INTEREST", []string{"INT.PD", "INTEREST"}},
			{"REFUND", []string{"REFUND", "REVERSAL", "REV-"}},
		},
	}
}

// IOBTables returns the classification tables for the quoted-CSV bank
// family. Same shape as DefaultTables with keyword lists tuned to that
// bank's narration vocabulary.
func IOBTables() Tables {
	return Tables{
		Categories: []CategoryEntry{
			{"Salary", []string{"salary", "sal "}},
			{"Investment", []string{"zerodha", "groww", "nse", "bse", "sip "}},
			{"Rent", []string{"rent"}},
			{"Food", []string{"swiggy", "zomato", "hotel", "bakery", "restaurant"}},
			{"Groceries", []string{"bigbasket", "blinkit", "stores", "mart", "provision"}},
			{"Shopping", []string{"amazon", "flipkart", "myntra"}},
			{"Transport", []string{"uber", "ola", "irctc", "petrol", "fuel"}},
			{"Entertainment", []string{"netflix", "bookmyshow", "spotify", "hotstar"}},
			{"Utilities", []string{"tneb", "electricity", "airtel", "jio", "bsnl", "recharge"}},
			{"Health", []string{"pharmacy", "medical", "hospital", "clinic"}},
			{"Insurance", []string{"lic", "insurance", "premium"}},
			{"Fees", []string{"charges", "chgs", "gst", "folio"}},
		},
		Tags: []TagCheck{
			{"UPI", []string{"UPI"}},
			{"SALARY", []string{"SALARY"}},
			{"ATM", []string{"ATM", "NFS", "CASH"}},
			{"EMI", []string{"EMI", "LOAN"}},
			{"SUBSCRIPTION", []string{"NETFLIX", "SPOTIFY", "HOTSTAR"}},
			{"INTEREST", []string{"INT", "SB INT"}},
			{"REFUND", []string{"REFUND", "REV"}},
		},
	}
}

// typeEntry drives transaction type classification. One shared table for
// every bank family; types are a fixed technical classification and are
// never driven by user rules.
type typeEntry struct {
	Type     string
	Keywords []string
}

var typeTable = []typeEntry{
	{models.TypeUPI, []string{"upi"}},
	{models.TypeBillPay, []string{"billpay", "bbps", "billdesk", "bill payment"}},
	{models.TypeTransfer, []string{"neft", "imps", "rtgs", "transfer", "tpt"}},
	{models.TypePOS, []string{"pos ", "pos/", "card"}},
	{models.TypeCheck, []string{"chq", "cheque", "clg"}},
	{models.TypeATM, []string{"atm", "cash wdl", "nwd"}},
}
