package locale

import "github.com/UnknownOlympus/hermes/internal/models"

var persian = Messages{
	Language: "fa",
	Labels: map[models.Field]string{
		models.FieldState:         "استان",
		models.FieldCity:          "شهر",
		models.FieldDistrict:      "منطقه",
		models.FieldNeighbourhood: "محله",
		models.FieldRoad:          "خیابان",
		models.FieldBuilding:      "پلاک/ساختمان",
		models.FieldPostcode:      "کدپستی",
		models.FieldFullAddress:   "آدرس کامل",
	},
	Hints: map[models.Field]string{
		models.FieldState:         "نام استان",
		models.FieldCity:          "نام شهر",
		models.FieldDistrict:      "منطقه شهرداری",
		models.FieldNeighbourhood: "نام محله",
		models.FieldRoad:          "نام خیابان‌ها",
		models.FieldBuilding:      "جزئیات",
		models.FieldPostcode:      "کد پستی",
		models.FieldFullAddress:   "آدرس روان و رسمی",
	},
	Separator: "، ",
	promptIntro: `به عنوان یک مامور پست دقیق، آدرس پستی کامل و دقیق مربوط به این مختصات را پیدا کن:
عرض جغرافیایی: %v
طول جغرافیایی: %v

لطفاً اطلاعات زیر را با جستجوی دقیق استخراج کن:
1. استان و شهر
2. منطقه شهرداری یا بخش (District)
3. نام محله یا شهرک
4. نام خیابان اصلی و فرعی
5. نام ساختمان، پلاک یا واحد (در صورت امکان)
6. کد پستی ۱۰ رقمی (بسیار مهم)

پاسخ را دقیقاً در قالب این برچسب‌ها برگردان (هر مورد در یک خط):`,
	errors: map[models.ErrorKind]string{
		models.KindPermissionDenied: "دسترسی به موقعیت مکانی رد شد. لطفاً در تنظیمات اجازه دسترسی به موقعیت مکانی را فعال کنید.",
		models.KindUnavailable:      "موقعیت مکانی در دسترس نیست. لطفاً از روشن بودن GPS مطمئن شوید و دوباره تلاش کنید.",
		models.KindUpstream:         "دریافت آدرس از سرویس‌های نقشه با خطا مواجه شد. لطفاً دوباره تلاش کنید.",
		models.KindUnknown:          "خطای غیرمنتظره در دریافت موقعیت رخ داد.",
	},
	copyTemplate:    "📍 موقعیت من:\n🏠 آدرس: %s\n📮 کد پستی: %s\n🌐 مختصات: %v, %v",
	unknownPostcode: "نامشخص",
	shareTitle:      "موقعیت مکانی دقیق من",
	shareTemplate:   "آدرس: %s\nکد پستی: %s",
}

var english = Messages{
	Language: "en",
	Labels: map[models.Field]string{
		models.FieldState:         "State",
		models.FieldCity:          "City",
		models.FieldDistrict:      "District",
		models.FieldNeighbourhood: "Neighbourhood",
		models.FieldRoad:          "Road",
		models.FieldBuilding:      "Building",
		models.FieldPostcode:      "Postcode",
		models.FieldFullAddress:   "Full address",
	},
	Hints: map[models.Field]string{
		models.FieldState:         "state or province",
		models.FieldCity:          "city",
		models.FieldDistrict:      "municipal district",
		models.FieldNeighbourhood: "neighbourhood",
		models.FieldRoad:          "main and side streets",
		models.FieldBuilding:      "building, number or unit",
		models.FieldPostcode:      "postal code",
		models.FieldFullAddress:   "formal single-line address",
	},
	Separator: ", ",
	promptIntro: `Acting as a meticulous postal clerk, find the complete and exact postal address for these coordinates:
Latitude: %v
Longitude: %v

Look up the following details carefully:
1. State and city
2. Municipal district
3. Neighbourhood
4. Main and side streets
5. Building name, number or unit (if possible)
6. Postal code (very important)

Return the answer using exactly these labels, one per line:`,
	errors: map[models.ErrorKind]string{
		models.KindPermissionDenied: "Location access was denied. Please allow location access in your settings and try again.",
		models.KindUnavailable:      "Your location is not available right now. Make sure location services are on and try again.",
		models.KindUpstream:         "The address services could not resolve your location. Please try again.",
		models.KindUnknown:          "An unexpected error occurred while getting your location.",
	},
	copyTemplate:    "📍 My location:\n🏠 Address: %s\n📮 Postcode: %s\n🌐 Coordinates: %v, %v",
	unknownPostcode: "unknown",
	shareTitle:      "My exact location",
	shareTemplate:   "Address: %s\nPostcode: %s",
}
