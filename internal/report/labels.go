package report

// CategoryCode is the category code of a transaction category.
type CategoryCode string

const (
	CategoryAdditionalSalary      CategoryCode = "AdditionalSalary"
	CategoryAssessment            CategoryCode = "Assessment"
	CategoryBenefits              CategoryCode = "Benefits"
	CategoryDonation              CategoryCode = "Donation"
	CategoryHealthcare            CategoryCode = "Healthcare"
	CategoryMinistry              CategoryCode = "Ministry"
	CategoryMinistryReimbursement CategoryCode = "MinistryReimbursement"
	CategorySalary                CategoryCode = "Salary"
	CategoryTransfer              CategoryCode = "Transfer"
	CategoryOther                 CategoryCode = "Other"
)

// SubcategoryCode is the code of a transaction subcategory.
type SubcategoryCode string

const (
	SubcategoryBonus         SubcategoryCode = "Bonus"
	SubcategoryConference    SubcategoryCode = "Conference"
	SubcategoryContribution  SubcategoryCode = "Contribution"
	SubcategoryDental        SubcategoryCode = "Dental"
	SubcategoryFee           SubcategoryCode = "Fee"
	SubcategoryGift          SubcategoryCode = "Gift"
	SubcategoryHousing       SubcategoryCode = "Housing"
	SubcategoryInsurance     SubcategoryCode = "Insurance"
	SubcategoryMeals         SubcategoryCode = "Meals"
	SubcategoryMedical       SubcategoryCode = "Medical"
	SubcategoryPayroll       SubcategoryCode = "Payroll"
	SubcategoryReimbursement SubcategoryCode = "Reimbursement"
	SubcategoryRetirement    SubcategoryCode = "Retirement"
	SubcategorySupplies      SubcategoryCode = "Supplies"
	SubcategoryTax           SubcategoryCode = "Tax"
	SubcategoryTravel        SubcategoryCode = "Travel"
	SubcategoryOther         SubcategoryCode = "Other"
)

// UnknownCategory is the label for any code without a translation.
const UnknownCategory = "Unknown Category"

// CategoryLabel returns the English message key for a category code.
func CategoryLabel(c CategoryCode) string {
	switch c {
	case CategoryAdditionalSalary:
		return "Additional Salary"
	case CategoryAssessment:
		return "Assessment"
	case CategoryBenefits:
		return "Benefits"
	case CategoryDonation:
		return "Donation"
	case CategoryHealthcare:
		return "Healthcare"
	case CategoryMinistry:
		return "Ministry"
	case CategoryMinistryReimbursement:
		return "Ministry Reimbursement"
	case CategorySalary:
		return "Salary"
	case CategoryTransfer:
		return "Transfer"
	case CategoryOther:
		return "Other"
	default:
		return UnknownCategory
	}
}

// SubcategoryLabel returns the English message key for a subcategory code.
func SubcategoryLabel(s SubcategoryCode) string {
	switch s {
	case SubcategoryBonus:
		return "Bonus"
	case SubcategoryConference:
		return "Conference"
	case SubcategoryContribution:
		return "Contribution"
	case SubcategoryDental:
		return "Dental"
	case SubcategoryFee:
		return "Fee"
	case SubcategoryGift:
		return "Gift"
	case SubcategoryHousing:
		return "Housing"
	case SubcategoryInsurance:
		return "Insurance"
	case SubcategoryMeals:
		return "Meals"
	case SubcategoryMedical:
		return "Medical"
	case SubcategoryPayroll:
		return "Payroll"
	case SubcategoryReimbursement:
		return "Reimbursement"
	case SubcategoryRetirement:
		return "Retirement"
	case SubcategorySupplies:
		return "Supplies"
	case SubcategoryTax:
		return "Tax"
	case SubcategoryTravel:
		return "Travel"
	case SubcategoryOther:
		return "Other"
	default:
		return UnknownCategory
	}
}
