package branch

import "github.com/sells-group/agreement-cli/internal/model"

const (
	officeName = "Options For Senior America"

	stagingSuffix = "_staging"

	defaultState          = "MD"
	defaultGoverningState = "Maryland"
	defaultAuthority      = "State Health Department"
	defaultMargin         = 0.4
)

// gaithersburg is the corporate office address several branches share.
func gaithersburg(tel, fax string) model.Address {
	return model.Address{
		OfficeName: officeName,
		Line1:      "6 Montgomery Village Avenue",
		Line2:      "Suite 330",
		City:       "Gaithersburg",
		Zip:        "20879",
		Tel:        tel,
		Fax:        fax,
	}
}

func office(line1, line2, city, zip, tel, fax string) model.Address {
	return model.Address{
		OfficeName: officeName,
		Line1:      line1,
		Line2:      line2,
		City:       city,
		Zip:        zip,
		Tel:        tel,
		Fax:        fax,
	}
}

// baseRecords lists every production and test branch. Staging twins are
// derived from these by expandStaging.
var baseRecords = []model.BranchRecord{
	// Maryland
	{Code: "anhomecare", DisplayName: "Annapolis Home Care (MD)", State: "MD",
		Address: office("200 Harry S. Truman Parkway", "Suite 205", "Annapolis", "21401", "410.224.2700", "410.224.2701")},
	{Code: "bahomecare", DisplayName: "Baltimore Home Care (MD)", State: "MD",
		Address: office("6 St. Paul Street", "Suite 1500", "Baltimore", "21202", "410.448.1100", "410.448.1101")},
	{Code: "blhomecare", DisplayName: "Bel Air Home Care (MD)", State: "MD",
		Address: office("5 Bel Air South Parkway", "Suite 104", "Bel Air", "21015", "410.893.9914", "410.893.9915")},
	{Code: "fkhomecare", DisplayName: "Frederick Home Care (MD)", State: "MD",
		Address: office("1300 W. Patrick Street", "Suite 2B", "Frederick", "21702", "301.624.5630", "301.624.5631")},
	{Code: "lphomecare", DisplayName: "La Plata Home Care (MD)", State: "MD",
		Address: office("100 La Grange Avenue", "Suite 210", "La Plata", "20646", "301.392.1387", "301.392.1388")},
	{Code: "blmdhomecare", DisplayName: "Baltimore MD Home Care", State: "MD",
		Address: office("4690 Millennium Drive", "", "Belcamp", "21017", "667.415.8317", "")},
	{Code: "testhomecare", DisplayName: "Test Home Care (MD)", State: "MD",
		Address: gaithersburg("301.562.1100", "301.562.1133")},

	// Georgia
	{Code: "athomecare", DisplayName: "Atlanta Home Care (GA)", State: "GA",
		Address: office("5909 Peachtree Dunwoody Rd", "Suite 800", "Atlanta", "30328", "404.634.1111", "")},
	{Code: "scgahomecare", DisplayName: "South Carolina/Georgia Home Care", State: "GA",
		Address: office("5909 Peachtree Dunwoody Rd", "Suite 800", "Atlanta", "30328", "404.634.1111", "")},

	// Ohio
	{Code: "clhomecare", DisplayName: "Cleveland Home Care (OH)", State: "OH",
		Address: office("2000 Auburn Drive", "Suite 200", "Beachwood", "44122", "216.861.3700", "")},
	{Code: "ciohhomecare", DisplayName: "Cincinnati Home Care (OH)", State: "OH",
		Address: office("4555 Lake Forest Drive", "Suite 650", "Cincinnati", "45242", "513.928.0042", "")},

	// Arizona
	{Code: "chazhomecare", DisplayName: "Chandler Home Care (AZ)", State: "AZ",
		Address: office("920 W. Chandler Blvd", "Suite 3", "Chandler", "85225", "480.673.3888", "")},

	// Virginia
	{Code: "nvahomecare", DisplayName: "NOVA Home Care (VA)", State: "VA",
		Address: gaithersburg("301.562.1100", "301.562.1133")},
	{Code: "nvahomecarearchive", DisplayName: "NOVA Home Care Archive (VA)", State: "VA"},
	{Code: "rihomecare", DisplayName: "Richmond Home Care (VA)", State: "VA",
		Address: gaithersburg("804.673.6730", "")},
	{Code: "mnhomecare", DisplayName: "Manassas Home Care (VA)", State: "VA",
		Address: office("10432 Balls Ford Road", "Suite 300", "Manassas", "20109", "571.449.6781", "")},
	{Code: "lovahomecare", DisplayName: "Loudoun Valley Home Care (VA)", State: "VA",
		Address: office("13800 Coppermine Road", "Suite 125-A", "Herndon", "20171", "571.999.5464", "")},
	{Code: "sfvahomecare", DisplayName: "Springfield Home Care (VA)", State: "VA",
		Address: office("7830 Backlick Road", "Suite 200-A", "Springfield", "22150", "571.416.8260", "")},
	{Code: "amfvahomecare", DisplayName: "Arlington/Manassas/Fairfax Home Care (VA)", State: "VA",
		Address: office("11350 Random Hills Rd", "Suite 800", "Fairfax", "22030", "571.449.6781", "")},
	{Code: "wfvahomecare", DisplayName: "Winchester/Frederick Home Care (VA)", State: "VA",
		Address: office("13800 Coppermine Road", "Suite 104-B", "Herndon", "20171", "703.622.7132", "")},
	{Code: "cfairfaxhomecare", DisplayName: "Centreville/Fairfax Home Care (VA)", State: "VA",
		Address: office("13800 Coppermine Road", "Suite 104-B", "Herndon", "20171", "703.622.7132", "")},

	// Florida
	{Code: "tahomecare", DisplayName: "Tampa Home Care (FL)", State: "FL",
		Address: office("3300 W. Cypress Street", "Suite 100", "Tampa", "33607", "813.555.0123", "")},
	{Code: "woflhomecare", DisplayName: "Winter Park/Orlando Home Care (FL)", State: "FL",
		Address: office("100 W. Pine Street", "Suite 200", "Orlando", "32801", "407.555.0123", "")},
	{Code: "lzflhomecare", DisplayName: "Lake Zurich FL Home Care", State: "FL",
		Address: office("200 N. Dale Mabry Highway", "Suite 300", "Tampa", "33609", "813.555.0124", "")},
	{Code: "wpbflhomecare", DisplayName: "West Palm Beach Home Care (FL)", State: "FL",
		Address: office("500 S. Australian Avenue", "Suite 400", "West Palm Beach", "33401", "561.555.0123", "")},

	// North Carolina
	{Code: "gbhomecare", DisplayName: "Greensboro Home Care (NC)", State: "NC",
		Address: office("701 Green Valley Road", "Suite 300", "Greensboro", "27408", "336.270.6647", "")},
	{Code: "rdhomecare", DisplayName: "Raleigh/Durham Home Care (NC)", State: "NC",
		Address: office("3605 Glenwood Avenue", "Suite 200", "Raleigh", "27612", "919.380.6812", "")},

	// Indiana, Michigan, New Jersey
	{Code: "lkinhomecare", DisplayName: "Lake County Home Care (IN)", State: "IN",
		Address: office("8488 Georgia Street", "Suite D", "Merrillville", "46410", "219.321.9130", "")},
	{Code: "shmihomecare", DisplayName: "Sterling Heights Home Care (MI)", State: "MI",
		Address: office("13854 Lakeside Circle", "Suite 250", "Sterling Heights", "48313", "586.344.8436", "")},
	{Code: "wenjhomecare", DisplayName: "West Essex Home Care (NJ)", State: "NJ",
		Address: office("70 South Orange Avenue", "Suite 105", "Livingston", "07039", "973.803.0901", "")},

	// Pennsylvania
	{Code: "hbhomecare", DisplayName: "Harrisburg Home Care (PA)", State: "PA",
		Address: gaithersburg("717.510.8613", "")},
	{Code: "nspahomecare", DisplayName: "Newtown Square/Philadelphia Home Care (PA)", State: "PA",
		Address: office("175 Strafford Avenue", "Suite One", "Wayne", "19087", "610.975.4422", "610.514.5560")},

	// District of Columbia
	{Code: "dchomecare", DisplayName: "DC Home Care", State: "DC",
		Address: gaithersburg("202.581.2000", "")},

	// Test
	{Code: "test2homecare", DisplayName: "Test 2 Home Care", State: "MD",
		Address: gaithersburg("301.562.1100", "301.562.1133")},
	{Code: "tomdhomecare", DisplayName: "TO Maryland Home Care", State: "MD",
		Address: gaithersburg("301.562.1100", "301.562.1133")},
}

// stagingNames holds staging display names that do not follow the
// "<name> - Staging (<ST>)" pattern.
var stagingNames = map[string]string{
	"lzflhomecare_staging": "Lake Zurich FL Home Care - Staging (FL)",
}

var statePolicies = map[string]model.StatePolicy{
	"MD": {Authority: "Maryland Office of Health Care Quality", GoverningName: "Maryland"},
	"VA": {Authority: "Virginia Department of Health", GoverningName: "Commonwealth of Virginia"},
	"GA": {Authority: "Georgia Department of Community Health, Healthcare Facility Regulation Division", GoverningName: "Georgia"},
	"FL": {Authority: "Florida Agency for Health Care Administration", GoverningName: "Florida"},
	"PA": {Authority: "Pennsylvania Department of Health", GoverningName: "Pennsylvania", ConsumerNotice: true},
	"NJ": {Authority: "New Jersey Department of Health", GoverningName: "New Jersey"},
	"OH": {Authority: "Ohio Department of Health", GoverningName: "Ohio"},
	"IN": {Authority: "Indiana State Department of Health", GoverningName: "Indiana"},
	"AZ": {Authority: "Arizona Department of Health Services", GoverningName: "Arizona"},
	"NC": {Authority: "North Carolina Department of Health and Human Services", GoverningName: "North Carolina"},
	"MI": {Authority: "Michigan Department of Health and Human Services"},
	"DC": {Authority: "District of Columbia Department of Health", GoverningName: "District of Columbia"},
}

// StandardHolidays are the surcharge holidays every branch bills.
var StandardHolidays = []string{
	"New Year's Day",
	"Martin Luther King Day",
	"Presidents' Day",
	"Memorial Day",
	"Juneteenth Day",
	"Independence Day",
	"Labor Day",
	"Columbus Day",
	"Veterans' Day",
	"Thanksgiving Day",
	"Christmas Day",
}
