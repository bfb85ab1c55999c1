package texts

import (
	"qrmenu/pkg/utils"
)

type TextKey = string

const (
	// Branch list
	OurBranches         TextKey = "our_branches"
	SelectBranch        TextKey = "select_branch"
	NoBranches          TextKey = "no_branches"
	ErrorLoadBranches   TextKey = "error_load_branches"
	TryAgainLater       TextKey = "try_again_later"
	Hours24             TextKey = "hours_24"
	BranchNotFound      TextKey = "branch_not_found"
	BranchNotFoundHint  TextKey = "branch_not_found_hint"
	BrandNotFound       TextKey = "brand_not_found"
	CheckURL            TextKey = "check_url"
	InvalidURL          TextKey = "invalid_url"
	GoHome              TextKey = "go_home"
	BackToBranches      TextKey = "back_to_branches"
	LanguageToggleLabel TextKey = "language_toggle_label"
	Menu                TextKey = "menu"
	SessionExpired      TextKey = "session_expired"
	InvalidAction       TextKey = "invalid_action"
	NoBranchSelected    TextKey = "no_branch_selected"
	BackNotAllowed      TextKey = "back_not_allowed"

	// Menu
	All                 TextKey = "all"
	ErrorLoadCategories TextKey = "error_load_categories"
	ErrorLoadProducts   TextKey = "error_load_products"
	NoProducts          TextKey = "no_products"
	Available           TextKey = "available"
	Unavailable         TextKey = "unavailable"
	Calories            TextKey = "calories"
	Minutes             TextKey = "minutes"
	Customizations      TextKey = "customizations"
	Allergens           TextKey = "allergens"
	ProductNotFound     TextKey = "product_not_found"
)

var MapText = map[TextKey]utils.Language{
	OurBranches:         {EN: "Our Branches", AR: "فروعنا"},
	SelectBranch:        {EN: "Select a branch to view the menu", AR: "اختر فرعاً لعرض القائمة"},
	NoBranches:          {EN: "No branches available", AR: "لا توجد فروع متاحة"},
	ErrorLoadBranches:   {EN: "Error Loading Branches", AR: "خطأ في تحميل الفروع"},
	TryAgainLater:       {EN: "Please try again later", AR: "يرجى المحاولة مرة أخرى لاحقاً"},
	Hours24:             {EN: "24 Hours", AR: "٢٤ ساعة"},
	BranchNotFound:      {EN: "Branch Not Found", AR: "الفرع غير موجود"},
	BranchNotFoundHint:  {EN: "This branch link is no longer valid. Choose a branch from the list.", AR: "رابط الفرع غير صالح. اختر فرعاً من القائمة."},
	BrandNotFound:       {EN: "Brand Not Found", AR: "العلامة التجارية غير موجودة"},
	CheckURL:            {EN: "Please check your URL and try again", AR: "يرجى التحقق من الرابط والمحاولة مرة أخرى"},
	InvalidURL:          {EN: "Invalid URL", AR: "رابط غير صالح"},
	GoHome:              {EN: "Go to home page", AR: "الذهاب إلى الصفحة الرئيسية"},
	BackToBranches:      {EN: "Back to branches", AR: "العودة إلى الفروع"},
	LanguageToggleLabel: {EN: "English", AR: "العربية"},
	Menu:                {EN: "Menu", AR: "القائمة"},
	SessionExpired:      {EN: "Your menu session has expired, please reload the page", AR: "انتهت جلسة القائمة، يرجى إعادة تحميل الصفحة"},
	InvalidAction:       {EN: "Invalid action", AR: "إجراء غير صالح"},
	NoBranchSelected:    {EN: "Select a branch first", AR: "اختر فرعاً أولاً"},
	BackNotAllowed:      {EN: "This menu cannot go back to the branch list", AR: "لا يمكن العودة إلى قائمة الفروع من هذه القائمة"},

	All:                 {EN: "All", AR: "الكل"},
	ErrorLoadCategories: {EN: "Failed to load categories", AR: "فشل تحميل الفئات"},
	ErrorLoadProducts:   {EN: "Failed to load products", AR: "فشل تحميل المنتجات"},
	NoProducts:          {EN: "No products available", AR: "لا توجد منتجات متاحة"},
	Available:           {EN: "Available", AR: "متوفر"},
	Unavailable:         {EN: "Unavailable", AR: "غير متوفر"},
	Calories:            {EN: "Cal", AR: "سعرة"},
	Minutes:             {EN: "min", AR: "دقيقة"},
	Customizations:      {EN: "Customizations", AR: "التخصيصات"},
	Allergens:           {EN: "Allergens", AR: "الحساسية"},
	ProductNotFound:     {EN: "Product Not Found", AR: "المنتج غير موجود"},
}

func Get(lang utils.Lang, key TextKey) string {
	if text, ok := MapText[key]; ok {
		return text.By(lang)
	}
	return key
}

