package dictionary

// builtin is the shipped name table. Several spellings may share one rendering.
// Keys are lowercase ASCII.
var builtin = []Entry{
	{Latin: "abebe", Ethiopic: "አበበ"},
	{Latin: "abel", Ethiopic: "አቤል"},
	{Latin: "abeba", Ethiopic: "አበባ"},
	{Latin: "addis", Ethiopic: "አዲስ"},
	{Latin: "alemayehu", Ethiopic: "ዓለማየሁ"},
	{Latin: "almaz", Ethiopic: "አልማዝ"},
	{Latin: "amanuel", Ethiopic: "አማኑኤል"},
	{Latin: "emmanuel", Ethiopic: "አማኑኤል"},
	{Latin: "ayana", Ethiopic: "አያና"},
	{Latin: "aster", Ethiopic: "አስቴር"},
	{Latin: "bekele", Ethiopic: "በቀለ"},
	{Latin: "bethlehem", Ethiopic: "ቤተልሔም"},
	{Latin: "betelhem", Ethiopic: "ቤተልሔም"},
	{Latin: "biruk", Ethiopic: "ብሩክ"},
	{Latin: "bereket", Ethiopic: "በረከት"},
	{Latin: "chala", Ethiopic: "ጫላ"},
	{Latin: "daniel", Ethiopic: "ዳንኤል"},
	{Latin: "dawit", Ethiopic: "ዳዊት"},
	{Latin: "david", Ethiopic: "ዳዊት"},
	{Latin: "demeke", Ethiopic: "ደመቀ"},
	{Latin: "derartu", Ethiopic: "ደራርቱ"},
	{Latin: "desta", Ethiopic: "ደስታ"},
	{Latin: "fasil", Ethiopic: "ፋሲል"},
	{Latin: "fikru", Ethiopic: "ፍቅሩ"},
	{Latin: "frehiwot", Ethiopic: "ፍሬሕይወት"},
	{Latin: "gebre", Ethiopic: "ገብሬ"},
	{Latin: "genet", Ethiopic: "ገነት"},
	{Latin: "girma", Ethiopic: "ግርማ"},
	{Latin: "hailu", Ethiopic: "ኃይሉ"},
	{Latin: "haile", Ethiopic: "ኃይሌ"},
	{Latin: "hana", Ethiopic: "ሃና"},
	{Latin: "hanna", Ethiopic: "ሃና"},
	{Latin: "henok", Ethiopic: "ሄኖክ"},
	{Latin: "hirut", Ethiopic: "ሂሩት"},
	{Latin: "john", Ethiopic: "ጆን"},
	{Latin: "kalkidan", Ethiopic: "ቃልኪዳን"},
	{Latin: "kebede", Ethiopic: "ከበደ"},
	{Latin: "kidus", Ethiopic: "ቅዱስ"},
	{Latin: "martha", Ethiopic: "ማርታ"},
	{Latin: "maryam", Ethiopic: "ማርያም"},
	{Latin: "mary", Ethiopic: "ማርያም"},
	{Latin: "mekdes", Ethiopic: "መቅደስ"},
	{Latin: "meron", Ethiopic: "ሜሮን"},
	{Latin: "mesfin", Ethiopic: "መስፍን"},
	{Latin: "michael", Ethiopic: "ሚካኤል"},
	{Latin: "mikael", Ethiopic: "ሚካኤል"},
	{Latin: "mulugeta", Ethiopic: "ሙሉጌታ"},
	{Latin: "nahom", Ethiopic: "ናሆም"},
	{Latin: "negash", Ethiopic: "ነጋሽ"},
	{Latin: "rahel", Ethiopic: "ራሔል"},
	{Latin: "ruth", Ethiopic: "ሩት"},
	{Latin: "samuel", Ethiopic: "ሳሙኤል"},
	{Latin: "sara", Ethiopic: "ሳራ"},
	{Latin: "sarah", Ethiopic: "ሳራ"},
	{Latin: "selam", Ethiopic: "ሰላም"},
	{Latin: "senait", Ethiopic: "ሰናይት"},
	{Latin: "solomon", Ethiopic: "ሰለሞን"},
	{Latin: "tesfaye", Ethiopic: "ተስፋዬ"},
	{Latin: "tewodros", Ethiopic: "ቴዎድሮስ"},
	{Latin: "tigist", Ethiopic: "ትዕግስት"},
	{Latin: "tsegaye", Ethiopic: "ፀጋዬ"},
	{Latin: "wondimu", Ethiopic: "ወንድሙ"},
	{Latin: "yared", Ethiopic: "ያሬድ"},
	{Latin: "yohannes", Ethiopic: "ዮሐንስ"},
	{Latin: "yonas", Ethiopic: "ዮናስ"},
	{Latin: "zewdu", Ethiopic: "ዘውዱ"},
	{Latin: "zeritu", Ethiopic: "ዘሪቱ"},
}
