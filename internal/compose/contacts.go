package compose

import "github.com/sells-group/agreement-cli/internal/model"

// contact holds the per-branch phone numbers, names and addresses printed in
// the patients' rights and complaint procedures.
type contact struct {
	// Maryland template
	TopMargin   string
	NewJersey   bool
	OmitHotline bool
	OfficeList  string

	// Regional and North Carolina templates
	ManagerPhone   string
	ComplaintPhone string
	DirectorInfo   string

	// Virginia template
	AdminName     string
	AdminPhone    string
	OfficeAddress string
}

const (
	corporateDirector = "at 1-800-2-OPTIONS, or in writing to OPTIONS Director, 555 Quince Orchard Road, Suite 240, Gaithersburg, MD 20878"
	marylandOffices   = "410.224.2700 for Annapolis, 410.448.1100 for Baltimore, 410.893.9914 for Bel Air, " +
		"301.562.3100 for Bethesda, 301.624.5630 for Frederick, and 301.392.1387 for La Plata"
	gaithersburgOffice = "6 Montgomery Village Avenue, Suite 330, Gaithersburg, MD 20879"
)

// templateContacts are used when a branch has no entry in branchContacts.
var templateContacts = map[model.RightsTemplate]contact{
	model.RightsMaryland: {TopMargin: "5px", OfficeList: marylandOffices},
	model.RightsRegional: {
		ManagerPhone:   "301.562.1100 or 800.267.8466",
		ComplaintPhone: "301.562.3100",
		DirectorInfo:   "at 1-800-2-OPTIONS",
	},
	model.RightsVirginia: {
		AdminName:     "Ramzi Rihani",
		AdminPhone:    "(703) 442-9700",
		OfficeAddress: gaithersburgOffice,
	},
	model.RightsNorthCarolina: {ComplaintPhone: "336.270.6647"},
	// DC branch serving a care recipient outside the District.
	model.RightsDCNonResident: {TopMargin: "0px", OmitHotline: true, OfficeList: marylandOffices},
}

// branchContacts is keyed by base branch code.
var branchContacts = map[string]contact{
	// Maryland
	"bahomecare":   {TopMargin: "0px", OfficeList: marylandOffices},
	"lphomecare":   {TopMargin: "0px", OfficeList: marylandOffices},
	"wenjhomecare": {TopMargin: "5px", NewJersey: true, OfficeList: "973.803.0901"},

	// Regional
	"clhomecare": {
		ManagerPhone:   "301.562.1100 or 800.267.8466",
		ComplaintPhone: "301.562.3100 for the District of Columbia, 216.861.3700 for the Cleveland area",
		DirectorInfo:   corporateDirector,
	},
	"blmdhomecare": {
		ManagerPhone:   "667.415.8317",
		ComplaintPhone: "667.415.8317",
		DirectorInfo:   "at 1-800-2-OPTIONS, or in writing to OPTIONS Director, 4690 Millennium Drive, Belcamp MD 21017",
	},
	"ciohhomecare": {
		ManagerPhone:   "513.928.0042",
		ComplaintPhone: "513.928.0042",
		DirectorInfo:   corporateDirector,
	},
	"chazhomecare": {
		ManagerPhone:   "480.673.3888",
		ComplaintPhone: "480.673.3888",
		DirectorInfo:   "at 480.673.3888, or in writing to OPTIONS Director, 920 W. Chandler Blvd, Suite 3, Chandler, AZ 85225",
	},
	"shmihomecare": {
		ManagerPhone:   "586.344.8436",
		ComplaintPhone: "586.344.8436",
		DirectorInfo:   "in writing to 13854 Lakeside Circle, Suite 250, Sterling Heights, MI 48313",
	},

	// Virginia
	"nvahomecare":        {AdminName: "Ramzi Rihani", AdminPhone: "(703) 442-9700", OfficeAddress: gaithersburgOffice},
	"nvahomecarearchive": {AdminName: "Ramzi Rihani", AdminPhone: "(703) 442-9700", OfficeAddress: gaithersburgOffice},
	"rihomecare":         {AdminName: "Ramzi Rihani", AdminPhone: "(804) 673-6730", OfficeAddress: gaithersburgOffice},
	"mnhomecare":         {AdminName: "Michele Mezher", AdminPhone: "(571) 449-6781", OfficeAddress: "10432 Balls Ford Road, Suite 300, Manassas, VA 20109"},
	"lovahomecare":       {AdminName: "Danny Mezher", AdminPhone: "571.999.5464", OfficeAddress: "13800 Coppermine Road, Suite 125-A, Herndon, VA 20171"},
	"sfvahomecare":       {AdminName: "Liza Sagudan", AdminPhone: "(571) 416-8260", OfficeAddress: "7830 Backlick Road, Suite 200-A, Springfield, VA 22150"},
	"amfvahomecare":      {AdminName: "Viral Patel", AdminPhone: "571.449.6781", OfficeAddress: "11350 Random Hills Rd, Suite 800, Fairfax, VA 22030"},
	"wfvahomecare":       {AdminName: "Danny Mezher", AdminPhone: "(703) 622-7132", OfficeAddress: "13800 Coppermine Road, Suite 104-B, Herndon, VA 20171"},
	"cfairfaxhomecare":   {AdminName: "Danny Mezher", AdminPhone: "(703) 622-7132", OfficeAddress: "13800 Coppermine Road, Suite 104-B, Herndon, VA 20171"},

	// North Carolina
	"gbhomecare": {ComplaintPhone: "336.270.6647"},
	"rdhomecare": {ComplaintPhone: "919.380.6812"},
}

// contactFor returns the rights contact data for a branch under a template.
// Entries for branches outside the template's group are ignored.
func contactFor(baseCode string, tmpl model.RightsTemplate) contact {
	def := templateContacts[tmpl]
	c, ok := branchContacts[baseCode]
	if !ok {
		return def
	}
	switch tmpl {
	case model.RightsMaryland:
		if c.OfficeList == "" {
			return def
		}
	case model.RightsRegional:
		if c.DirectorInfo == "" {
			return def
		}
	case model.RightsVirginia:
		if c.AdminName == "" {
			return def
		}
	case model.RightsNorthCarolina:
		if c.ComplaintPhone == "" {
			return def
		}
	default:
		return def
	}
	return c
}
