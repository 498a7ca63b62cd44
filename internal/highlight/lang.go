package highlight

import "strings"

// languageWords holds the per-language keyword and type-name sets consulted
// during reclassification. Adding a language is a table addition here plus
// an alias entry, never a new code path.
type languageWords struct {
	keywords map[string]bool
	types    map[string]bool
}

func wordSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}

var genericWords = &languageWords{
	keywords: wordSet(`
		if else for while do switch case default break continue return
		function func def class struct enum interface import export from
		package module let var const static public private protected
		new delete try catch finally throw throws async await yield
		true false null nil none this self super in of as is not and or
	`),
	types: wordSet(`
		int float double bool boolean string char byte long short void
		object array map list set dict
	`),
}

var swiftWords = &languageWords{
	keywords: wordSet(`
		func let var if else guard switch case default for while repeat
		break continue return defer class struct enum protocol extension
		import typealias associatedtype init deinit subscript static
		public private fileprivate internal open final lazy weak unowned
		mutating nonmutating override required convenience throws rethrows
		throw try catch do as is in where some any await async actor
		true false nil self super
	`),
	types: wordSet(`
		Int Int8 Int16 Int32 Int64 UInt Double Float Bool String Character
		Array Dictionary Set Optional Result Error Void Any AnyObject Data
		Date URL UUID
	`),
}

var javascriptWords = &languageWords{
	keywords: wordSet(`
		var let const function return if else for while do switch case
		default break continue new delete typeof instanceof in of class
		extends super this import export from as async await yield try
		catch finally throw static get set true false null undefined void
		interface type enum implements declare readonly keyof namespace
	`),
	types: wordSet(`
		string number boolean object symbol bigint any unknown never
		Array Object String Number Boolean Promise Map Set Date RegExp
		Error JSON Math console
	`),
}

var pythonWords = &languageWords{
	keywords: wordSet(`
		def class return if elif else for while break continue pass import
		from as with lambda yield global nonlocal del try except finally
		raise assert in is not and or True False None async await match case
	`),
	types: wordSet(`
		int float str bool bytes list dict tuple set frozenset object type
		Exception ValueError TypeError KeyError
	`),
}

var goWords = &languageWords{
	keywords: wordSet(`
		package import func var const type struct interface map chan if
		else for range switch case default break continue fallthrough
		return go defer select goto true false nil iota
	`),
	types: wordSet(`
		int int8 int16 int32 int64 uint uint8 uint16 uint32 uint64 uintptr
		float32 float64 complex64 complex128 byte rune string bool error any
	`),
}

var rustWords = &languageWords{
	keywords: wordSet(`
		fn let mut const static if else match for while loop break continue
		return struct enum trait impl use mod pub crate super self Self
		where as in ref move async await dyn unsafe extern type true false
	`),
	types: wordSet(`
		i8 i16 i32 i64 i128 isize u8 u16 u32 u64 u128 usize f32 f64 bool
		char str String Vec Option Result Box Rc Arc HashMap HashSet
	`),
}

var javaWords = &languageWords{
	keywords: wordSet(`
		public private protected static final abstract class interface
		enum extends implements import package new return if else for
		while do switch case default break continue try catch finally
		throw throws synchronized volatile transient native instanceof
		this super void true false null var record sealed permits
	`),
	types: wordSet(`
		int long short byte float double boolean char String Integer Long
		Double Float Boolean Character Object List Map Set ArrayList
		HashMap Optional Stream Exception
	`),
}

var kotlinWords = &languageWords{
	keywords: wordSet(`
		fun val var if else when for while do break continue return class
		object interface enum sealed data inner inline open abstract
		override public private protected internal import package is as
		in out by lazy lateinit companion init constructor this super
		try catch finally throw suspend true false null
	`),
	types: wordSet(`
		Int Long Short Byte Float Double Boolean Char String Unit Nothing
		Any List MutableList Map MutableMap Set Array Pair Triple
	`),
}

var cWords = &languageWords{
	keywords: wordSet(`
		if else for while do switch case default break continue return
		goto struct union enum typedef sizeof static extern const volatile
		register inline restrict auto new delete class public private
		protected virtual override template typename namespace using
		try catch throw this nullptr true false operator friend constexpr
	`),
	types: wordSet(`
		int long short char float double void unsigned signed bool size_t
		int8_t int16_t int32_t int64_t uint8_t uint16_t uint32_t uint64_t
		FILE std string vector map
	`),
}

var csharpWords = &languageWords{
	keywords: wordSet(`
		public private protected internal static readonly const class
		struct interface enum record namespace using new return if else
		for foreach while do switch case default break continue try catch
		finally throw async await var in out ref params this base is as
		get set init sealed abstract virtual override partial true false
		null void
	`),
	types: wordSet(`
		int long short byte float double decimal bool char string object
		String Int32 Int64 Boolean List Dictionary Task IEnumerable
	`),
}

var rubyWords = &languageWords{
	keywords: wordSet(`
		def class module end if elsif else unless case when while until
		for do break next redo retry begin rescue ensure raise return
		yield super self nil true false and or not in then require
		require_relative attr_accessor attr_reader attr_writer lambda proc
	`),
	types: wordSet(`
		Integer Float String Symbol Array Hash Range Proc Struct Time
		NilClass TrueClass FalseClass StandardError
	`),
}

var phpWords = &languageWords{
	keywords: wordSet(`
		function class interface trait extends implements namespace use
		public private protected static final abstract const new return
		if elseif else for foreach while do switch case default break
		continue try catch finally throw echo print require include
		isset unset empty global true false null as instanceof match fn
	`),
	types: wordSet(`
		int float string bool array object callable iterable mixed void
		self parent static
	`),
}

var sqlWords = &languageWords{
	keywords: wordSet(`
		select from where insert into values update set delete create
		table index view drop alter add join inner left right outer full
		on group by having order asc desc limit offset union all distinct
		as and or not null is in between like exists primary key foreign
		references default unique check constraint begin commit rollback
		SELECT FROM WHERE INSERT INTO VALUES UPDATE SET DELETE CREATE
		TABLE INDEX VIEW DROP ALTER ADD JOIN INNER LEFT RIGHT OUTER FULL
		ON GROUP BY HAVING ORDER ASC DESC LIMIT OFFSET UNION ALL DISTINCT
		AS AND OR NOT NULL IS IN BETWEEN LIKE EXISTS PRIMARY KEY FOREIGN
		REFERENCES DEFAULT UNIQUE CHECK CONSTRAINT BEGIN COMMIT ROLLBACK
	`),
	types: wordSet(`
		integer bigint smallint serial varchar text char boolean date
		timestamp numeric decimal real float blob json jsonb uuid
		INTEGER BIGINT SMALLINT SERIAL VARCHAR TEXT CHAR BOOLEAN DATE
		TIMESTAMP NUMERIC DECIMAL REAL FLOAT BLOB JSON JSONB UUID
	`),
}

var shellWords = &languageWords{
	keywords: wordSet(`
		if then elif else fi for in do done while until case esac function
		return break continue exit local export readonly declare set unset
		shift source alias echo printf read test true false
	`),
	types: wordSet(``),
}

// languageTables maps every accepted alias to its word table. Lookup is
// case-insensitive; empty and unknown names resolve to the generic table.
var languageTables = map[string]*languageWords{
	"swift": swiftWords,

	"js":         javascriptWords,
	"javascript": javascriptWords,
	"jsx":        javascriptWords,
	"tsx":        javascriptWords,
	"ts":         javascriptWords,
	"typescript": javascriptWords,

	"py":      pythonWords,
	"python":  pythonWords,
	"python3": pythonWords,

	"go":     goWords,
	"golang": goWords,

	"rs":   rustWords,
	"rust": rustWords,

	"java": javaWords,

	"kt":     kotlinWords,
	"kotlin": kotlinWords,

	"c":   cWords,
	"h":   cWords,
	"cpp": cWords,
	"c++": cWords,
	"cc":  cWords,
	"hpp": cWords,

	"cs":     csharpWords,
	"csharp": csharpWords,

	"rb":   rubyWords,
	"ruby": rubyWords,

	"php": phpWords,

	"sql": sqlWords,

	"sh":    shellWords,
	"bash":  shellWords,
	"zsh":   shellWords,
	"shell": shellWords,
}

func lookupLanguage(language string) *languageWords {
	name := strings.ToLower(strings.TrimSpace(language))
	if words, ok := languageTables[name]; ok {
		return words
	}
	return genericWords
}
