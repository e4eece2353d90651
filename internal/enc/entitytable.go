//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package enc

// NamedEntities - HTML5 named character references keyed by codepoint; only
// single-codepoint references are present; multiple names share a codepoint
// when the WHATWG list has aliases
var NamedEntities = map[rune][]string{
	0x00009: {"Tab"},
	0x0000A: {"NewLine"},
	0x00021: {"excl"},
	0x00022: {"QUOT", "quot"},
	0x00023: {"num"},
	0x00024: {"dollar"},
	0x00025: {"percnt"},
	0x00026: {"AMP", "amp"},
	0x00027: {"apos"},
	0x00028: {"lpar"},
	0x00029: {"rpar"},
	0x0002A: {"ast", "midast"},
	0x0002B: {"plus"},
	0x0002C: {"comma"},
	0x0002E: {"period"},
	0x0002F: {"sol"},
	0x0003A: {"colon"},
	0x0003B: {"semi"},
	0x0003C: {"LT", "lt"},
	0x0003D: {"equals"},
	0x0003E: {"GT", "gt"},
	0x0003F: {"quest"},
	0x00040: {"commat"},
	0x0005B: {"lsqb", "lbrack"},
	0x0005C: {"bsol"},
	0x0005D: {"rsqb", "rbrack"},
	0x0005E: {"Hat"},
	0x0005F: {"lowbar", "UnderBar"},
	0x00060: {"grave", "DiacriticalGrave"},
	0x0007B: {"lcub", "lbrace"},
	0x0007C: {"vert", "verbar", "VerticalLine"},
	0x0007D: {"rcub", "rbrace"},
	0x000A0: {"nbsp", "NonBreakingSpace"},
	0x000A1: {"iexcl"},
	0x000A2: {"cent"},
	0x000A3: {"pound"},
	0x000A4: {"curren"},
	0x000A5: {"yen"},
	0x000A6: {"brvbar"},
	0x000A7: {"sect"},
	0x000A8: {"Dot", "die", "uml", "DoubleDot"},
	0x000A9: {"COPY", "copy"},
	0x000AA: {"ordf"},
	0x000AB: {"laquo"},
	0x000AC: {"not"},
	0x000AD: {"shy"},
	0x000AE: {"REG", "reg", "circledR"},
	0x000AF: {"macr", "strns"},
	0x000B0: {"deg"},
	0x000B1: {"pm", "plusmn", "PlusMinus"},
	0x000B2: {"sup2"},
	0x000B3: {"sup3"},
	0x000B4: {"acute", "DiacriticalAcute"},
	0x000B5: {"micro"},
	0x000B6: {"para"},
	0x000B7: {"middot", "CenterDot", "centerdot"},
	0x000B8: {"cedil", "Cedilla"},
	0x000B9: {"sup1"},
	0x000BA: {"ordm"},
	0x000BB: {"raquo"},
	0x000BC: {"frac14"},
	0x000BD: {"half", "frac12"},
	0x000BE: {"frac34"},
	0x000BF: {"iquest"},
	0x000C0: {"Agrave"},
	0x000C1: {"Aacute"},
	0x000C2: {"Acirc"},
	0x000C3: {"Atilde"},
	0x000C4: {"Auml"},
	0x000C5: {"Aring", "angst"},
	0x000C6: {"AElig"},
	0x000C7: {"Ccedil"},
	0x000C8: {"Egrave"},
	0x000C9: {"Eacute"},
	0x000CA: {"Ecirc"},
	0x000CB: {"Euml"},
	0x000CC: {"Igrave"},
	0x000CD: {"Iacute"},
	0x000CE: {"Icirc"},
	0x000CF: {"Iuml"},
	0x000D0: {"ETH"},
	0x000D1: {"Ntilde"},
	0x000D2: {"Ograve"},
	0x000D3: {"Oacute"},
	0x000D4: {"Ocirc"},
	0x000D5: {"Otilde"},
	0x000D6: {"Ouml"},
	0x000D7: {"times"},
	0x000D8: {"Oslash"},
	0x000D9: {"Ugrave"},
	0x000DA: {"Uacute"},
	0x000DB: {"Ucirc"},
	0x000DC: {"Uuml"},
	0x000DD: {"Yacute"},
	0x000DE: {"THORN"},
	0x000DF: {"szlig"},
	0x000E0: {"agrave"},
	0x000E1: {"aacute"},
	0x000E2: {"acirc"},
	0x000E3: {"atilde"},
	0x000E4: {"auml"},
	0x000E5: {"aring"},
	0x000E6: {"aelig"},
	0x000E7: {"ccedil"},
	0x000E8: {"egrave"},
	0x000E9: {"eacute"},
	0x000EA: {"ecirc"},
	0x000EB: {"euml"},
	0x000EC: {"igrave"},
	0x000ED: {"iacute"},
	0x000EE: {"icirc"},
	0x000EF: {"iuml"},
	0x000F0: {"eth"},
	0x000F1: {"ntilde"},
	0x000F2: {"ograve"},
	0x000F3: {"oacute"},
	0x000F4: {"ocirc"},
	0x000F5: {"otilde"},
	0x000F6: {"ouml"},
	0x000F7: {"div", "divide"},
	0x000F8: {"oslash"},
	0x000F9: {"ugrave"},
	0x000FA: {"uacute"},
	0x000FB: {"ucirc"},
	0x000FC: {"uuml"},
	0x000FD: {"yacute"},
	0x000FE: {"thorn"},
	0x000FF: {"yuml"},
	0x00100: {"Amacr"},
	0x00101: {"amacr"},
	0x00102: {"Abreve"},
	0x00103: {"abreve"},
	0x00104: {"Aogon"},
	0x00105: {"aogon"},
	0x00106: {"Cacute"},
	0x00107: {"cacute"},
	0x00108: {"Ccirc"},
	0x00109: {"ccirc"},
	0x0010A: {"Cdot"},
	0x0010B: {"cdot"},
	0x0010C: {"Ccaron"},
	0x0010D: {"ccaron"},
	0x0010E: {"Dcaron"},
	0x0010F: {"dcaron"},
	0x00110: {"Dstrok"},
	0x00111: {"dstrok"},
	0x00112: {"Emacr"},
	0x00113: {"emacr"},
	0x00116: {"Edot"},
	0x00117: {"edot"},
	0x00118: {"Eogon"},
	0x00119: {"eogon"},
	0x0011A: {"Ecaron"},
	0x0011B: {"ecaron"},
	0x0011C: {"Gcirc"},
	0x0011D: {"gcirc"},
	0x0011E: {"Gbreve"},
	0x0011F: {"gbreve"},
	0x00120: {"Gdot"},
	0x00121: {"gdot"},
	0x00122: {"Gcedil"},
	0x00124: {"Hcirc"},
	0x00125: {"hcirc"},
	0x00126: {"Hstrok"},
	0x00127: {"hstrok"},
	0x00128: {"Itilde"},
	0x00129: {"itilde"},
	0x0012A: {"Imacr"},
	0x0012B: {"imacr"},
	0x0012E: {"Iogon"},
	0x0012F: {"iogon"},
	0x00130: {"Idot"},
	0x00131: {"imath", "inodot"},
	0x00132: {"IJlig"},
	0x00133: {"ijlig"},
	0x00134: {"Jcirc"},
	0x00135: {"jcirc"},
	0x00136: {"Kcedil"},
	0x00137: {"kcedil"},
	0x00138: {"kgreen"},
	0x00139: {"Lacute"},
	0x0013A: {"lacute"},
	0x0013B: {"Lcedil"},
	0x0013C: {"lcedil"},
	0x0013D: {"Lcaron"},
	0x0013E: {"lcaron"},
	0x0013F: {"Lmidot"},
	0x00140: {"lmidot"},
	0x00141: {"Lstrok"},
	0x00142: {"lstrok"},
	0x00143: {"Nacute"},
	0x00144: {"nacute"},
	0x00145: {"Ncedil"},
	0x00146: {"ncedil"},
	0x00147: {"Ncaron"},
	0x00148: {"ncaron"},
	0x00149: {"napos"},
	0x0014A: {"ENG"},
	0x0014B: {"eng"},
	0x0014C: {"Omacr"},
	0x0014D: {"omacr"},
	0x00150: {"Odblac"},
	0x00151: {"odblac"},
	0x00152: {"OElig"},
	0x00153: {"oelig"},
	0x00154: {"Racute"},
	0x00155: {"racute"},
	0x00156: {"Rcedil"},
	0x00157: {"rcedil"},
	0x00158: {"Rcaron"},
	0x00159: {"rcaron"},
	0x0015A: {"Sacute"},
	0x0015B: {"sacute"},
	0x0015C: {"Scirc"},
	0x0015D: {"scirc"},
	0x0015E: {"Scedil"},
	0x0015F: {"scedil"},
	0x00160: {"Scaron"},
	0x00161: {"scaron"},
	0x00162: {"Tcedil"},
	0x00163: {"tcedil"},
	0x00164: {"Tcaron"},
	0x00165: {"tcaron"},
	0x00166: {"Tstrok"},
	0x00167: {"tstrok"},
	0x00168: {"Utilde"},
	0x00169: {"utilde"},
	0x0016A: {"Umacr"},
	0x0016B: {"umacr"},
	0x0016C: {"Ubreve"},
	0x0016D: {"ubreve"},
	0x0016E: {"Uring"},
	0x0016F: {"uring"},
	0x00170: {"Udblac"},
	0x00171: {"udblac"},
	0x00172: {"Uogon"},
	0x00173: {"uogon"},
	0x00174: {"Wcirc"},
	0x00175: {"wcirc"},
	0x00176: {"Ycirc"},
	0x00177: {"ycirc"},
	0x00178: {"Yuml"},
	0x00179: {"Zacute"},
	0x0017A: {"zacute"},
	0x0017B: {"Zdot"},
	0x0017C: {"zdot"},
	0x0017D: {"Zcaron"},
	0x0017E: {"zcaron"},
	0x00192: {"fnof"},
	0x001B5: {"imped"},
	0x001F5: {"gacute"},
	0x00237: {"jmath"},
	0x002C6: {"circ"},
	0x002C7: {"Hacek", "caron"},
	0x002D8: {"Breve", "breve"},
	0x002D9: {"dot", "DiacriticalDot"},
	0x002DA: {"ring"},
	0x002DB: {"ogon"},
	0x002DC: {"tilde", "DiacriticalTilde"},
	0x002DD: {"dblac", "DiacriticalDoubleAcute"},
	0x00311: {"DownBreve"},
	0x00391: {"Alpha"},
	0x00392: {"Beta"},
	0x00393: {"Gamma"},
	0x00394: {"Delta"},
	0x00395: {"Epsilon"},
	0x00396: {"Zeta"},
	0x00397: {"Eta"},
	0x00398: {"Theta"},
	0x00399: {"Iota"},
	0x0039A: {"Kappa"},
	0x0039B: {"Lambda"},
	0x0039C: {"Mu"},
	0x0039D: {"Nu"},
	0x0039E: {"Xi"},
	0x0039F: {"Omicron"},
	0x003A0: {"Pi"},
	0x003A1: {"Rho"},
	0x003A3: {"Sigma"},
	0x003A4: {"Tau"},
	0x003A5: {"Upsilon"},
	0x003A6: {"Phi"},
	0x003A7: {"Chi"},
	0x003A8: {"Psi"},
	0x003A9: {"ohm", "Omega"},
	0x003B1: {"alpha"},
	0x003B2: {"beta"},
	0x003B3: {"gamma"},
	0x003B4: {"delta"},
	0x003B5: {"epsi", "epsilon"},
	0x003B6: {"zeta"},
	0x003B7: {"eta"},
	0x003B8: {"theta"},
	0x003B9: {"iota"},
	0x003BA: {"kappa"},
	0x003BB: {"lambda"},
	0x003BC: {"mu"},
	0x003BD: {"nu"},
	0x003BE: {"xi"},
	0x003BF: {"omicron"},
	0x003C0: {"pi"},
	0x003C1: {"rho"},
	0x003C2: {"sigmaf", "sigmav", "varsigma"},
	0x003C3: {"sigma"},
	0x003C4: {"tau"},
	0x003C5: {"upsi", "upsilon"},
	0x003C6: {"phi"},
	0x003C7: {"chi"},
	0x003C8: {"psi"},
	0x003C9: {"omega"},
	0x003D1: {"thetav", "thetasym", "vartheta"},
	0x003D2: {"Upsi", "upsih"},
	0x003D5: {"phiv", "varphi", "straightphi"},
	0x003D6: {"piv", "varpi"},
	0x003DC: {"Gammad"},
	0x003DD: {"gammad", "digamma"},
	0x003F0: {"kappav", "varkappa"},
	0x003F1: {"rhov", "varrho"},
	0x003F5: {"epsiv", "varepsilon", "straightepsilon"},
	0x003F6: {"bepsi", "backepsilon"},
	0x00401: {"IOcy"},
	0x00402: {"DJcy"},
	0x00403: {"GJcy"},
	0x00404: {"Jukcy"},
	0x00405: {"DScy"},
	0x00406: {"Iukcy"},
	0x00407: {"YIcy"},
	0x00408: {"Jsercy"},
	0x00409: {"LJcy"},
	0x0040A: {"NJcy"},
	0x0040B: {"TSHcy"},
	0x0040C: {"KJcy"},
	0x0040E: {"Ubrcy"},
	0x0040F: {"DZcy"},
	0x00410: {"Acy"},
	0x00411: {"Bcy"},
	0x00412: {"Vcy"},
	0x00413: {"Gcy"},
	0x00414: {"Dcy"},
	0x00415: {"IEcy"},
	0x00416: {"ZHcy"},
	0x00417: {"Zcy"},
	0x00418: {"Icy"},
	0x00419: {"Jcy"},
	0x0041A: {"Kcy"},
	0x0041B: {"Lcy"},
	0x0041C: {"Mcy"},
	0x0041D: {"Ncy"},
	0x0041E: {"Ocy"},
	0x0041F: {"Pcy"},
	0x00420: {"Rcy"},
	0x00421: {"Scy"},
	0x00422: {"Tcy"},
	0x00423: {"Ucy"},
	0x00424: {"Fcy"},
	0x00425: {"KHcy"},
	0x00426: {"TScy"},
	0x00427: {"CHcy"},
	0x00428: {"SHcy"},
	0x00429: {"SHCHcy"},
	0x0042A: {"HARDcy"},
	0x0042B: {"Ycy"},
	0x0042C: {"SOFTcy"},
	0x0042D: {"Ecy"},
	0x0042E: {"YUcy"},
	0x0042F: {"YAcy"},
	0x00430: {"acy"},
	0x00431: {"bcy"},
	0x00432: {"vcy"},
	0x00433: {"gcy"},
	0x00434: {"dcy"},
	0x00435: {"iecy"},
	0x00436: {"zhcy"},
	0x00437: {"zcy"},
	0x00438: {"icy"},
	0x00439: {"jcy"},
	0x0043A: {"kcy"},
	0x0043B: {"lcy"},
	0x0043C: {"mcy"},
	0x0043D: {"ncy"},
	0x0043E: {"ocy"},
	0x0043F: {"pcy"},
	0x00440: {"rcy"},
	0x00441: {"scy"},
	0x00442: {"tcy"},
	0x00443: {"ucy"},
	0x00444: {"fcy"},
	0x00445: {"khcy"},
	0x00446: {"tscy"},
	0x00447: {"chcy"},
	0x00448: {"shcy"},
	0x00449: {"shchcy"},
	0x0044A: {"hardcy"},
	0x0044B: {"ycy"},
	0x0044C: {"softcy"},
	0x0044D: {"ecy"},
	0x0044E: {"yucy"},
	0x0044F: {"yacy"},
	0x00451: {"iocy"},
	0x00452: {"djcy"},
	0x00453: {"gjcy"},
	0x00454: {"jukcy"},
	0x00455: {"dscy"},
	0x00456: {"iukcy"},
	0x00457: {"yicy"},
	0x00458: {"jsercy"},
	0x00459: {"ljcy"},
	0x0045A: {"njcy"},
	0x0045B: {"tshcy"},
	0x0045C: {"kjcy"},
	0x0045E: {"ubrcy"},
	0x0045F: {"dzcy"},
	0x02002: {"ensp"},
	0x02003: {"emsp"},
	0x02004: {"emsp13"},
	0x02005: {"emsp14"},
	0x02007: {"numsp"},
	0x02008: {"puncsp"},
	0x02009: {"thinsp", "ThinSpace"},
	0x0200A: {"hairsp", "VeryThinSpace"},
	0x0200B: {"ZeroWidthSpace", "NegativeThinSpace", "NegativeThickSpace", "NegativeMediumSpace", "NegativeVeryThinSpace"},
	0x0200C: {"zwnj"},
	0x0200D: {"zwj"},
	0x0200E: {"lrm"},
	0x0200F: {"rlm"},
	0x02010: {"dash", "hyphen"},
	0x02013: {"ndash"},
	0x02014: {"mdash"},
	0x02015: {"horbar"},
	0x02016: {"Vert", "Verbar"},
	0x02018: {"lsquo", "OpenCurlyQuote"},
	0x02019: {"rsquo", "rsquor", "CloseCurlyQuote"},
	0x0201A: {"sbquo", "lsquor"},
	0x0201C: {"ldquo", "OpenCurlyDoubleQuote"},
	0x0201D: {"rdquo", "rdquor", "CloseCurlyDoubleQuote"},
	0x0201E: {"bdquo", "ldquor"},
	0x02020: {"dagger"},
	0x02021: {"Dagger", "ddagger"},
	0x02022: {"bull", "bullet"},
	0x02025: {"nldr"},
	0x02026: {"mldr", "hellip"},
	0x02030: {"permil"},
	0x02031: {"pertenk"},
	0x02032: {"prime"},
	0x02033: {"Prime"},
	0x02034: {"tprime"},
	0x02035: {"bprime", "backprime"},
	0x02039: {"lsaquo"},
	0x0203A: {"rsaquo"},
	0x0203E: {"oline", "OverBar"},
	0x02041: {"caret"},
	0x02043: {"hybull"},
	0x02044: {"frasl"},
	0x0204F: {"bsemi"},
	0x02057: {"qprime"},
	0x0205F: {"MediumSpace"},
	0x02060: {"NoBreak"},
	0x02061: {"af", "ApplyFunction"},
	0x02062: {"it", "InvisibleTimes"},
	0x02063: {"ic", "InvisibleComma"},
	0x020AC: {"euro"},
	0x020DB: {"tdot", "TripleDot"},
	0x020DC: {"DotDot"},
	0x02102: {"Copf", "complexes"},
	0x02105: {"incare"},
	0x0210A: {"gscr"},
	0x0210B: {"Hscr", "hamilt", "HilbertSpace"},
	0x0210C: {"Hfr", "Poincareplane"},
	0x0210D: {"Hopf", "quaternions"},
	0x0210E: {"planckh"},
	0x0210F: {"hbar", "hslash", "planck", "plankv"},
	0x02110: {"Iscr", "imagline"},
	0x02111: {"Im", "Ifr", "image", "imagpart"},
	0x02112: {"Lscr", "lagran", "Laplacetrf"},
	0x02113: {"ell"},
	0x02115: {"Nopf", "naturals"},
	0x02116: {"numero"},
	0x02117: {"copysr"},
	0x02118: {"wp", "weierp"},
	0x02119: {"Popf", "primes"},
	0x0211A: {"Qopf", "rationals"},
	0x0211B: {"Rscr", "realine"},
	0x0211C: {"Re", "Rfr", "real", "realpart"},
	0x0211D: {"Ropf", "reals"},
	0x0211E: {"rx"},
	0x02122: {"TRADE", "trade"},
	0x02124: {"Zopf", "integers"},
	0x02127: {"mho"},
	0x02128: {"Zfr", "zeetrf"},
	0x02129: {"iiota"},
	0x0212C: {"Bscr", "bernou", "Bernoullis"},
	0x0212D: {"Cfr", "Cayleys"},
	0x0212F: {"escr"},
	0x02130: {"Escr", "expectation"},
	0x02131: {"Fscr", "Fouriertrf"},
	0x02133: {"Mscr", "phmmat", "Mellintrf"},
	0x02134: {"oscr", "order", "orderof"},
	0x02135: {"aleph", "alefsym"},
	0x02136: {"beth"},
	0x02137: {"gimel"},
	0x02138: {"daleth"},
	0x02145: {"DD", "CapitalDifferentialD"},
	0x02146: {"dd", "DifferentialD"},
	0x02147: {"ee", "ExponentialE", "exponentiale"},
	0x02148: {"ii", "ImaginaryI"},
	0x02153: {"frac13"},
	0x02154: {"frac23"},
	0x02155: {"frac15"},
	0x02156: {"frac25"},
	0x02157: {"frac35"},
	0x02158: {"frac45"},
	0x02159: {"frac16"},
	0x0215A: {"frac56"},
	0x0215B: {"frac18"},
	0x0215C: {"frac38"},
	0x0215D: {"frac58"},
	0x0215E: {"frac78"},
	0x02190: {"larr", "slarr", "LeftArrow", "leftarrow", "ShortLeftArrow"},
	0x02191: {"uarr", "UpArrow", "uparrow", "ShortUpArrow"},
	0x02192: {"rarr", "srarr", "RightArrow", "rightarrow", "ShortRightArrow"},
	0x02193: {"darr", "DownArrow", "downarrow", "ShortDownArrow"},
	0x02194: {"harr", "LeftRightArrow", "leftrightarrow"},
	0x02195: {"varr", "UpDownArrow", "updownarrow"},
	0x02196: {"nwarr", "nwarrow", "UpperLeftArrow"},
	0x02197: {"nearr", "nearrow", "UpperRightArrow"},
	0x02198: {"searr", "searrow", "LowerRightArrow"},
	0x02199: {"swarr", "swarrow", "LowerLeftArrow"},
	0x0219A: {"nlarr", "nleftarrow"},
	0x0219B: {"nrarr", "nrightarrow"},
	0x0219D: {"rarrw", "rightsquigarrow"},
	0x0219E: {"Larr", "twoheadleftarrow"},
	0x0219F: {"Uarr"},
	0x021A0: {"Rarr", "twoheadrightarrow"},
	0x021A1: {"Darr"},
	0x021A2: {"larrtl", "leftarrowtail"},
	0x021A3: {"rarrtl", "rightarrowtail"},
	0x021A4: {"mapstoleft", "LeftTeeArrow"},
	0x021A5: {"mapstoup", "UpTeeArrow"},
	0x021A6: {"map", "mapsto", "RightTeeArrow"},
	0x021A7: {"mapstodown", "DownTeeArrow"},
	0x021A9: {"larrhk", "hookleftarrow"},
	0x021AA: {"rarrhk", "hookrightarrow"},
	0x021AB: {"larrlp", "looparrowleft"},
	0x021AC: {"rarrlp", "looparrowright"},
	0x021AD: {"harrw", "leftrightsquigarrow"},
	0x021AE: {"nharr", "nleftrightarrow"},
	0x021B0: {"Lsh", "lsh"},
	0x021B1: {"Rsh", "rsh"},
	0x021B2: {"ldsh"},
	0x021B3: {"rdsh"},
	0x021B5: {"crarr"},
	0x021B6: {"cularr", "curvearrowleft"},
	0x021B7: {"curarr", "curvearrowright"},
	0x021BA: {"olarr", "circlearrowleft"},
	0x021BB: {"orarr", "circlearrowright"},
	0x021BC: {"lharu", "LeftVector", "leftharpoonup"},
	0x021BD: {"lhard", "DownLeftVector", "leftharpoondown"},
	0x021BE: {"uharr", "RightUpVector", "upharpoonright"},
	0x021BF: {"uharl", "LeftUpVector", "upharpoonleft"},
	0x021C0: {"rharu", "RightVector", "rightharpoonup"},
	0x021C1: {"rhard", "DownRightVector", "rightharpoondown"},
	0x021C2: {"dharr", "RightDownVector", "downharpoonright"},
	0x021C3: {"dharl", "LeftDownVector", "downharpoonleft"},
	0x021C4: {"rlarr", "rightleftarrows", "RightArrowLeftArrow"},
	0x021C5: {"udarr", "UpArrowDownArrow"},
	0x021C6: {"lrarr", "leftrightarrows", "LeftArrowRightArrow"},
	0x021C7: {"llarr", "leftleftarrows"},
	0x021C8: {"uuarr", "upuparrows"},
	0x021C9: {"rrarr", "rightrightarrows"},
	0x021CA: {"ddarr", "downdownarrows"},
	0x021CB: {"lrhar", "leftrightharpoons", "ReverseEquilibrium"},
	0x021CC: {"rlhar", "Equilibrium", "rightleftharpoons"},
	0x021CD: {"nlArr", "nLeftarrow"},
	0x021CE: {"nhArr", "nLeftrightarrow"},
	0x021CF: {"nrArr", "nRightarrow"},
	0x021D0: {"lArr", "Leftarrow", "DoubleLeftArrow"},
	0x021D1: {"uArr", "Uparrow", "DoubleUpArrow"},
	0x021D2: {"rArr", "Implies", "Rightarrow", "DoubleRightArrow"},
	0x021D3: {"dArr", "Downarrow", "DoubleDownArrow"},
	0x021D4: {"iff", "hArr", "Leftrightarrow", "DoubleLeftRightArrow"},
	0x021D5: {"vArr", "Updownarrow", "DoubleUpDownArrow"},
	0x021D6: {"nwArr"},
	0x021D7: {"neArr"},
	0x021D8: {"seArr"},
	0x021D9: {"swArr"},
	0x021DA: {"lAarr", "Lleftarrow"},
	0x021DB: {"rAarr", "Rrightarrow"},
	0x021DD: {"zigrarr"},
	0x021E4: {"larrb", "LeftArrowBar"},
	0x021E5: {"rarrb", "RightArrowBar"},
	0x021F5: {"duarr", "DownArrowUpArrow"},
	0x021FD: {"loarr"},
	0x021FE: {"roarr"},
	0x021FF: {"hoarr"},
	0x02200: {"ForAll", "forall"},
	0x02201: {"comp", "complement"},
	0x02202: {"part", "PartialD"},
	0x02203: {"exist", "Exists"},
	0x02204: {"nexist", "nexists", "NotExists"},
	0x02205: {"empty", "emptyv", "emptyset", "varnothing"},
	0x02207: {"Del", "nabla"},
	0x02208: {"in", "isin", "isinv", "Element"},
	0x02209: {"notin", "notinva", "NotElement"},
	0x0220B: {"ni", "niv", "SuchThat", "ReverseElement"},
	0x0220C: {"notni", "notniva", "NotReverseElement"},
	0x0220F: {"prod", "Product"},
	0x02210: {"coprod", "Coproduct"},
	0x02211: {"Sum", "sum"},
	0x02212: {"minus"},
	0x02213: {"mp", "mnplus", "MinusPlus"},
	0x02214: {"plusdo", "dotplus"},
	0x02216: {"setmn", "ssetmn", "setminus", "Backslash", "smallsetminus"},
	0x02217: {"lowast"},
	0x02218: {"compfn", "SmallCircle"},
	0x0221A: {"Sqrt", "radic"},
	0x0221D: {"prop", "vprop", "propto", "varpropto", "Proportional"},
	0x0221E: {"infin"},
	0x0221F: {"angrt"},
	0x02220: {"ang", "angle"},
	0x02221: {"angmsd", "measuredangle"},
	0x02222: {"angsph"},
	0x02223: {"mid", "smid", "shortmid", "VerticalBar"},
	0x02224: {"nmid", "nsmid", "nshortmid", "NotVerticalBar"},
	0x02225: {"par", "spar", "parallel", "shortparallel", "DoubleVerticalBar"},
	0x02226: {"npar", "nspar", "nparallel", "nshortparallel", "NotDoubleVerticalBar"},
	0x02227: {"and", "wedge"},
	0x02228: {"or", "vee"},
	0x02229: {"cap"},
	0x0222A: {"cup"},
	0x0222B: {"int", "Integral"},
	0x0222C: {"Int"},
	0x0222D: {"tint", "iiint"},
	0x0222E: {"oint", "conint", "ContourIntegral"},
	0x0222F: {"Conint", "DoubleContourIntegral"},
	0x02230: {"Cconint"},
	0x02231: {"cwint"},
	0x02232: {"cwconint", "ClockwiseContourIntegral"},
	0x02233: {"awconint", "CounterClockwiseContourIntegral"},
	0x02234: {"there4", "Therefore", "therefore"},
	0x02235: {"becaus", "Because", "because"},
	0x02236: {"ratio"},
	0x02237: {"Colon", "Proportion"},
	0x02238: {"minusd", "dotminus"},
	0x0223A: {"mDDot"},
	0x0223B: {"homtht"},
	0x0223C: {"sim", "Tilde", "thksim", "thicksim"},
	0x0223D: {"bsim", "backsim"},
	0x0223E: {"ac", "mstpos"},
	0x0223F: {"acd"},
	0x02240: {"wr", "wreath", "VerticalTilde"},
	0x02241: {"nsim", "NotTilde"},
	0x02242: {"esim", "eqsim", "EqualTilde"},
	0x02243: {"sime", "simeq", "TildeEqual"},
	0x02244: {"nsime", "nsimeq", "NotTildeEqual"},
	0x02245: {"cong", "TildeFullEqual"},
	0x02246: {"simne"},
	0x02247: {"ncong", "NotTildeFullEqual"},
	0x02248: {"ap", "asymp", "thkap", "approx", "TildeTilde", "thickapprox"},
	0x02249: {"nap", "napprox", "NotTildeTilde"},
	0x0224A: {"ape", "approxeq"},
	0x0224B: {"apid"},
	0x0224C: {"bcong", "backcong"},
	0x0224D: {"CupCap", "asympeq"},
	0x0224E: {"bump", "Bumpeq", "HumpDownHump"},
	0x0224F: {"bumpe", "bumpeq", "HumpEqual"},
	0x02250: {"doteq", "esdot", "DotEqual"},
	0x02251: {"eDot", "doteqdot"},
	0x02252: {"efDot", "fallingdotseq"},
	0x02253: {"erDot", "risingdotseq"},
	0x02254: {"Assign", "colone", "coloneq"},
	0x02255: {"ecolon", "eqcolon"},
	0x02256: {"ecir", "eqcirc"},
	0x02257: {"cire", "circeq"},
	0x02259: {"wedgeq"},
	0x0225A: {"veeeq"},
	0x0225C: {"trie", "triangleq"},
	0x0225F: {"equest", "questeq"},
	0x02260: {"ne", "NotEqual"},
	0x02261: {"equiv", "Congruent"},
	0x02262: {"nequiv", "NotCongruent"},
	0x02264: {"le", "leq"},
	0x02265: {"ge", "geq", "GreaterEqual"},
	0x02266: {"lE", "leqq", "LessFullEqual"},
	0x02267: {"gE", "geqq", "GreaterFullEqual"},
	0x02268: {"lnE", "lneqq"},
	0x02269: {"gnE", "gneqq"},
	0x0226A: {"Lt", "ll", "NestedLessLess"},
	0x0226B: {"Gt", "gg", "NestedGreaterGreater"},
	0x0226C: {"twixt", "between"},
	0x0226D: {"NotCupCap"},
	0x0226E: {"nlt", "nless", "NotLess"},
	0x0226F: {"ngt", "ngtr", "NotGreater"},
	0x02270: {"nle", "nleq", "NotLessEqual"},
	0x02271: {"nge", "ngeq", "NotGreaterEqual"},
	0x02272: {"lsim", "lesssim", "LessTilde"},
	0x02273: {"gsim", "gtrsim", "GreaterTilde"},
	0x02274: {"nlsim", "NotLessTilde"},
	0x02275: {"ngsim", "NotGreaterTilde"},
	0x02276: {"lg", "lessgtr", "LessGreater"},
	0x02277: {"gl", "gtrless", "GreaterLess"},
	0x02278: {"ntlg", "NotLessGreater"},
	0x02279: {"ntgl", "NotGreaterLess"},
	0x0227A: {"pr", "prec", "Precedes"},
	0x0227B: {"sc", "succ", "Succeeds"},
	0x0227C: {"prcue", "preccurlyeq", "PrecedesSlantEqual"},
	0x0227D: {"sccue", "succcurlyeq", "SucceedsSlantEqual"},
	0x0227E: {"prsim", "precsim", "PrecedesTilde"},
	0x0227F: {"scsim", "succsim", "SucceedsTilde"},
	0x02280: {"npr", "nprec", "NotPrecedes"},
	0x02281: {"nsc", "nsucc", "NotSucceeds"},
	0x02282: {"sub", "subset"},
	0x02283: {"sup", "supset", "Superset"},
	0x02284: {"nsub"},
	0x02285: {"nsup"},
	0x02286: {"sube", "subseteq", "SubsetEqual"},
	0x02287: {"supe", "supseteq", "SupersetEqual"},
	0x02288: {"nsube", "nsubseteq", "NotSubsetEqual"},
	0x02289: {"nsupe", "nsupseteq", "NotSupersetEqual"},
	0x0228A: {"subne", "subsetneq"},
	0x0228B: {"supne", "supsetneq"},
	0x0228D: {"cupdot"},
	0x0228E: {"uplus", "UnionPlus"},
	0x0228F: {"sqsub", "sqsubset", "SquareSubset"},
	0x02290: {"sqsup", "sqsupset", "SquareSuperset"},
	0x02291: {"sqsube", "sqsubseteq", "SquareSubsetEqual"},
	0x02292: {"sqsupe", "sqsupseteq", "SquareSupersetEqual"},
	0x02293: {"sqcap", "SquareIntersection"},
	0x02294: {"sqcup", "SquareUnion"},
	0x02295: {"oplus", "CirclePlus"},
	0x02296: {"ominus", "CircleMinus"},
	0x02297: {"otimes", "CircleTimes"},
	0x02298: {"osol"},
	0x02299: {"odot", "CircleDot"},
	0x0229A: {"ocir", "circledcirc"},
	0x0229B: {"oast", "circledast"},
	0x0229D: {"odash", "circleddash"},
	0x0229E: {"plusb", "boxplus"},
	0x0229F: {"minusb", "boxminus"},
	0x022A0: {"timesb", "boxtimes"},
	0x022A1: {"sdotb", "dotsquare"},
	0x022A2: {"vdash", "RightTee"},
	0x022A3: {"dashv", "LeftTee"},
	0x022A4: {"top", "DownTee"},
	0x022A5: {"bot", "perp", "UpTee", "bottom"},
	0x022A7: {"models"},
	0x022A8: {"vDash", "DoubleRightTee"},
	0x022A9: {"Vdash"},
	0x022AA: {"Vvdash"},
	0x022AB: {"VDash"},
	0x022AC: {"nvdash"},
	0x022AD: {"nvDash"},
	0x022AE: {"nVdash"},
	0x022AF: {"nVDash"},
	0x022B0: {"prurel"},
	0x022B2: {"vltri", "LeftTriangle", "vartriangleleft"},
	0x022B3: {"vrtri", "RightTriangle", "vartriangleright"},
	0x022B4: {"ltrie", "trianglelefteq", "LeftTriangleEqual"},
	0x022B5: {"rtrie", "trianglerighteq", "RightTriangleEqual"},
	0x022B6: {"origof"},
	0x022B7: {"imof"},
	0x022B8: {"mumap", "multimap"},
	0x022B9: {"hercon"},
	0x022BA: {"intcal", "intercal"},
	0x022BB: {"veebar"},
	0x022BD: {"barvee"},
	0x022BE: {"angrtvb"},
	0x022BF: {"lrtri"},
	0x022C0: {"Wedge", "xwedge", "bigwedge"},
	0x022C1: {"Vee", "xvee", "bigvee"},
	0x022C2: {"xcap", "bigcap", "Intersection"},
	0x022C3: {"xcup", "Union", "bigcup"},
	0x022C4: {"diam", "Diamond", "diamond"},
	0x022C5: {"sdot"},
	0x022C6: {"Star", "sstarf"},
	0x022C7: {"divonx", "divideontimes"},
	0x022C8: {"bowtie"},
	0x022C9: {"ltimes"},
	0x022CA: {"rtimes"},
	0x022CB: {"lthree", "leftthreetimes"},
	0x022CC: {"rthree", "rightthreetimes"},
	0x022CD: {"bsime", "backsimeq"},
	0x022CE: {"cuvee", "curlyvee"},
	0x022CF: {"cuwed", "curlywedge"},
	0x022D0: {"Sub", "Subset"},
	0x022D1: {"Sup", "Supset"},
	0x022D2: {"Cap"},
	0x022D3: {"Cup"},
	0x022D4: {"fork", "pitchfork"},
	0x022D5: {"epar"},
	0x022D6: {"ltdot", "lessdot"},
	0x022D7: {"gtdot", "gtrdot"},
	0x022D8: {"Ll"},
	0x022D9: {"Gg", "ggg"},
	0x022DA: {"leg", "lesseqgtr", "LessEqualGreater"},
	0x022DB: {"gel", "gtreqless", "GreaterEqualLess"},
	0x022DE: {"cuepr", "curlyeqprec"},
	0x022DF: {"cuesc", "curlyeqsucc"},
	0x022E0: {"nprcue", "NotPrecedesSlantEqual"},
	0x022E1: {"nsccue", "NotSucceedsSlantEqual"},
	0x022E2: {"nsqsube", "NotSquareSubsetEqual"},
	0x022E3: {"nsqsupe", "NotSquareSupersetEqual"},
	0x022E6: {"lnsim"},
	0x022E7: {"gnsim"},
	0x022E8: {"prnsim", "precnsim"},
	0x022E9: {"scnsim", "succnsim"},
	0x022EA: {"nltri", "ntriangleleft", "NotLeftTriangle"},
	0x022EB: {"nrtri", "ntriangleright", "NotRightTriangle"},
	0x022EC: {"nltrie", "ntrianglelefteq", "NotLeftTriangleEqual"},
	0x022ED: {"nrtrie", "ntrianglerighteq", "NotRightTriangleEqual"},
	0x022EE: {"vellip"},
	0x022EF: {"ctdot"},
	0x022F0: {"utdot"},
	0x022F1: {"dtdot"},
	0x022F2: {"disin"},
	0x022F3: {"isinsv"},
	0x022F4: {"isins"},
	0x022F5: {"isindot"},
	0x022F6: {"notinvc"},
	0x022F7: {"notinvb"},
	0x022F9: {"isinE"},
	0x022FA: {"nisd"},
	0x022FB: {"xnis"},
	0x022FC: {"nis"},
	0x022FD: {"notnivc"},
	0x022FE: {"notnivb"},
	0x02305: {"barwed", "barwedge"},
	0x02306: {"Barwed", "doublebarwedge"},
	0x02308: {"lceil", "LeftCeiling"},
	0x02309: {"rceil", "RightCeiling"},
	0x0230A: {"lfloor", "LeftFloor"},
	0x0230B: {"rfloor", "RightFloor"},
	0x0230C: {"drcrop"},
	0x0230D: {"dlcrop"},
	0x0230E: {"urcrop"},
	0x0230F: {"ulcrop"},
	0x02310: {"bnot"},
	0x02312: {"profline"},
	0x02313: {"profsurf"},
	0x02315: {"telrec"},
	0x02316: {"target"},
	0x0231C: {"ulcorn", "ulcorner"},
	0x0231D: {"urcorn", "urcorner"},
	0x0231E: {"dlcorn", "llcorner"},
	0x0231F: {"drcorn", "lrcorner"},
	0x02322: {"frown", "sfrown"},
	0x02323: {"smile", "ssmile"},
	0x0232D: {"cylcty"},
	0x0232E: {"profalar"},
	0x02336: {"topbot"},
	0x0233D: {"ovbar"},
	0x0233F: {"solbar"},
	0x0237C: {"angzarr"},
	0x023B0: {"lmoust", "lmoustache"},
	0x023B1: {"rmoust", "rmoustache"},
	0x023B4: {"tbrk", "OverBracket"},
	0x023B5: {"bbrk", "UnderBracket"},
	0x023B6: {"bbrktbrk"},
	0x023DC: {"OverParenthesis"},
	0x023DD: {"UnderParenthesis"},
	0x023DE: {"OverBrace"},
	0x023DF: {"UnderBrace"},
	0x023E2: {"trpezium"},
	0x023E7: {"elinters"},
	0x02423: {"blank"},
	0x024C8: {"oS", "circledS"},
	0x02500: {"boxh", "HorizontalLine"},
	0x02502: {"boxv"},
	0x0250C: {"boxdr"},
	0x02510: {"boxdl"},
	0x02514: {"boxur"},
	0x02518: {"boxul"},
	0x0251C: {"boxvr"},
	0x02524: {"boxvl"},
	0x0252C: {"boxhd"},
	0x02534: {"boxhu"},
	0x0253C: {"boxvh"},
	0x02550: {"boxH"},
	0x02551: {"boxV"},
	0x02552: {"boxdR"},
	0x02553: {"boxDr"},
	0x02554: {"boxDR"},
	0x02555: {"boxdL"},
	0x02556: {"boxDl"},
	0x02557: {"boxDL"},
	0x02558: {"boxuR"},
	0x02559: {"boxUr"},
	0x0255A: {"boxUR"},
	0x0255B: {"boxuL"},
	0x0255C: {"boxUl"},
	0x0255D: {"boxUL"},
	0x0255E: {"boxvR"},
	0x0255F: {"boxVr"},
	0x02560: {"boxVR"},
	0x02561: {"boxvL"},
	0x02562: {"boxVl"},
	0x02563: {"boxVL"},
	0x02564: {"boxHd"},
	0x02565: {"boxhD"},
	0x02566: {"boxHD"},
	0x02567: {"boxHu"},
	0x02568: {"boxhU"},
	0x02569: {"boxHU"},
	0x0256A: {"boxvH"},
	0x0256B: {"boxVh"},
	0x0256C: {"boxVH"},
	0x02580: {"uhblk"},
	0x02584: {"lhblk"},
	0x02588: {"block"},
	0x02591: {"blk14"},
	0x02592: {"blk12"},
	0x02593: {"blk34"},
	0x025A1: {"squ", "Square", "square"},
	0x025AA: {"squf", "squarf", "blacksquare", "FilledVerySmallSquare"},
	0x025AB: {"EmptyVerySmallSquare"},
	0x025AD: {"rect"},
	0x025AE: {"marker"},
	0x025B1: {"fltns"},
	0x025B3: {"xutri", "bigtriangleup"},
	0x025B4: {"utrif", "blacktriangle"},
	0x025B5: {"utri", "triangle"},
	0x025B8: {"rtrif", "blacktriangleright"},
	0x025B9: {"rtri", "triangleright"},
	0x025BD: {"xdtri", "bigtriangledown"},
	0x025BE: {"dtrif", "blacktriangledown"},
	0x025BF: {"dtri", "triangledown"},
	0x025C2: {"ltrif", "blacktriangleleft"},
	0x025C3: {"ltri", "triangleleft"},
	0x025CA: {"loz", "lozenge"},
	0x025CB: {"cir"},
	0x025EC: {"tridot"},
	0x025EF: {"xcirc", "bigcirc"},
	0x025F8: {"ultri"},
	0x025F9: {"urtri"},
	0x025FA: {"lltri"},
	0x025FB: {"EmptySmallSquare"},
	0x025FC: {"FilledSmallSquare"},
	0x02605: {"starf", "bigstar"},
	0x02606: {"star"},
	0x0260E: {"phone"},
	0x02640: {"female"},
	0x02642: {"male"},
	0x02660: {"spades", "spadesuit"},
	0x02663: {"clubs", "clubsuit"},
	0x02665: {"hearts", "heartsuit"},
	0x02666: {"diams", "diamondsuit"},
	0x0266A: {"sung"},
	0x0266D: {"flat"},
	0x0266E: {"natur", "natural"},
	0x0266F: {"sharp"},
	0x02713: {"check", "checkmark"},
	0x02717: {"cross"},
	0x02720: {"malt", "maltese"},
	0x02736: {"sext"},
	0x02758: {"VerticalSeparator"},
	0x02772: {"lbbrk"},
	0x02773: {"rbbrk"},
	0x027C8: {"bsolhsub"},
	0x027C9: {"suphsol"},
	0x027E6: {"lobrk", "LeftDoubleBracket"},
	0x027E7: {"robrk", "RightDoubleBracket"},
	0x027E8: {"lang", "langle", "LeftAngleBracket"},
	0x027E9: {"rang", "rangle", "RightAngleBracket"},
	0x027EA: {"Lang"},
	0x027EB: {"Rang"},
	0x027EC: {"loang"},
	0x027ED: {"roang"},
	0x027F5: {"xlarr", "LongLeftArrow", "longleftarrow"},
	0x027F6: {"xrarr", "LongRightArrow", "longrightarrow"},
	0x027F7: {"xharr", "LongLeftRightArrow", "longleftrightarrow"},
	0x027F8: {"xlArr", "Longleftarrow", "DoubleLongLeftArrow"},
	0x027F9: {"xrArr", "Longrightarrow", "DoubleLongRightArrow"},
	0x027FA: {"xhArr", "Longleftrightarrow", "DoubleLongLeftRightArrow"},
	0x027FC: {"xmap", "longmapsto"},
	0x027FF: {"dzigrarr"},
	0x02902: {"nvlArr"},
	0x02903: {"nvrArr"},
	0x02904: {"nvHarr"},
	0x02905: {"Map"},
	0x0290C: {"lbarr"},
	0x0290D: {"rbarr", "bkarow"},
	0x0290E: {"lBarr"},
	0x0290F: {"rBarr", "dbkarow"},
	0x02910: {"RBarr", "drbkarow"},
	0x02911: {"DDotrahd"},
	0x02912: {"UpArrowBar"},
	0x02913: {"DownArrowBar"},
	0x02916: {"Rarrtl"},
	0x02919: {"latail"},
	0x0291A: {"ratail"},
	0x0291B: {"lAtail"},
	0x0291C: {"rAtail"},
	0x0291D: {"larrfs"},
	0x0291E: {"rarrfs"},
	0x0291F: {"larrbfs"},
	0x02920: {"rarrbfs"},
	0x02923: {"nwarhk"},
	0x02924: {"nearhk"},
	0x02925: {"searhk", "hksearow"},
	0x02926: {"swarhk", "hkswarow"},
	0x02927: {"nwnear"},
	0x02928: {"toea", "nesear"},
	0x02929: {"tosa", "seswar"},
	0x0292A: {"swnwar"},
	0x02933: {"rarrc"},
	0x02935: {"cudarrr"},
	0x02936: {"ldca"},
	0x02937: {"rdca"},
	0x02938: {"cudarrl"},
	0x02939: {"larrpl"},
	0x0293C: {"curarrm"},
	0x0293D: {"cularrp"},
	0x02945: {"rarrpl"},
	0x02948: {"harrcir"},
	0x02949: {"Uarrocir"},
	0x0294A: {"lurdshar"},
	0x0294B: {"ldrushar"},
	0x0294E: {"LeftRightVector"},
	0x0294F: {"RightUpDownVector"},
	0x02950: {"DownLeftRightVector"},
	0x02951: {"LeftUpDownVector"},
	0x02952: {"LeftVectorBar"},
	0x02953: {"RightVectorBar"},
	0x02954: {"RightUpVectorBar"},
	0x02955: {"RightDownVectorBar"},
	0x02956: {"DownLeftVectorBar"},
	0x02957: {"DownRightVectorBar"},
	0x02958: {"LeftUpVectorBar"},
	0x02959: {"LeftDownVectorBar"},
	0x0295A: {"LeftTeeVector"},
	0x0295B: {"RightTeeVector"},
	0x0295C: {"RightUpTeeVector"},
	0x0295D: {"RightDownTeeVector"},
	0x0295E: {"DownLeftTeeVector"},
	0x0295F: {"DownRightTeeVector"},
	0x02960: {"LeftUpTeeVector"},
	0x02961: {"LeftDownTeeVector"},
	0x02962: {"lHar"},
	0x02963: {"uHar"},
	0x02964: {"rHar"},
	0x02965: {"dHar"},
	0x02966: {"luruhar"},
	0x02967: {"ldrdhar"},
	0x02968: {"ruluhar"},
	0x02969: {"rdldhar"},
	0x0296A: {"lharul"},
	0x0296B: {"llhard"},
	0x0296C: {"rharul"},
	0x0296D: {"lrhard"},
	0x0296E: {"udhar", "UpEquilibrium"},
	0x0296F: {"duhar", "ReverseUpEquilibrium"},
	0x02970: {"RoundImplies"},
	0x02971: {"erarr"},
	0x02972: {"simrarr"},
	0x02973: {"larrsim"},
	0x02974: {"rarrsim"},
	0x02975: {"rarrap"},
	0x02976: {"ltlarr"},
	0x02978: {"gtrarr"},
	0x02979: {"subrarr"},
	0x0297B: {"suplarr"},
	0x0297C: {"lfisht"},
	0x0297D: {"rfisht"},
	0x0297E: {"ufisht"},
	0x0297F: {"dfisht"},
	0x02985: {"lopar"},
	0x02986: {"ropar"},
	0x0298B: {"lbrke"},
	0x0298C: {"rbrke"},
	0x0298D: {"lbrkslu"},
	0x0298E: {"rbrksld"},
	0x0298F: {"lbrksld"},
	0x02990: {"rbrkslu"},
	0x02991: {"langd"},
	0x02992: {"rangd"},
	0x02993: {"lparlt"},
	0x02994: {"rpargt"},
	0x02995: {"gtlPar"},
	0x02996: {"ltrPar"},
	0x0299A: {"vzigzag"},
	0x0299C: {"vangrt"},
	0x0299D: {"angrtvbd"},
	0x029A4: {"ange"},
	0x029A5: {"range"},
	0x029A6: {"dwangle"},
	0x029A7: {"uwangle"},
	0x029A8: {"angmsdaa"},
	0x029A9: {"angmsdab"},
	0x029AA: {"angmsdac"},
	0x029AB: {"angmsdad"},
	0x029AC: {"angmsdae"},
	0x029AD: {"angmsdaf"},
	0x029AE: {"angmsdag"},
	0x029AF: {"angmsdah"},
	0x029B0: {"bemptyv"},
	0x029B1: {"demptyv"},
	0x029B2: {"cemptyv"},
	0x029B3: {"raemptyv"},
	0x029B4: {"laemptyv"},
	0x029B5: {"ohbar"},
	0x029B6: {"omid"},
	0x029B7: {"opar"},
	0x029B9: {"operp"},
	0x029BB: {"olcross"},
	0x029BC: {"odsold"},
	0x029BE: {"olcir"},
	0x029BF: {"ofcir"},
	0x029C0: {"olt"},
	0x029C1: {"ogt"},
	0x029C2: {"cirscir"},
	0x029C3: {"cirE"},
	0x029C4: {"solb"},
	0x029C5: {"bsolb"},
	0x029C9: {"boxbox"},
	0x029CD: {"trisb"},
	0x029CE: {"rtriltri"},
	0x029CF: {"LeftTriangleBar"},
	0x029D0: {"RightTriangleBar"},
	0x029DC: {"iinfin"},
	0x029DD: {"infintie"},
	0x029DE: {"nvinfin"},
	0x029E3: {"eparsl"},
	0x029E4: {"smeparsl"},
	0x029E5: {"eqvparsl"},
	0x029EB: {"lozf", "blacklozenge"},
	0x029F4: {"RuleDelayed"},
	0x029F6: {"dsol"},
	0x02A00: {"xodot", "bigodot"},
	0x02A01: {"xoplus", "bigoplus"},
	0x02A02: {"xotime", "bigotimes"},
	0x02A04: {"xuplus", "biguplus"},
	0x02A06: {"xsqcup", "bigsqcup"},
	0x02A0C: {"qint", "iiiint"},
	0x02A0D: {"fpartint"},
	0x02A10: {"cirfnint"},
	0x02A11: {"awint"},
	0x02A12: {"rppolint"},
	0x02A13: {"scpolint"},
	0x02A14: {"npolint"},
	0x02A15: {"pointint"},
	0x02A16: {"quatint"},
	0x02A17: {"intlarhk"},
	0x02A22: {"pluscir"},
	0x02A23: {"plusacir"},
	0x02A24: {"simplus"},
	0x02A25: {"plusdu"},
	0x02A26: {"plussim"},
	0x02A27: {"plustwo"},
	0x02A29: {"mcomma"},
	0x02A2A: {"minusdu"},
	0x02A2D: {"loplus"},
	0x02A2E: {"roplus"},
	0x02A2F: {"Cross"},
	0x02A30: {"timesd"},
	0x02A31: {"timesbar"},
	0x02A33: {"smashp"},
	0x02A34: {"lotimes"},
	0x02A35: {"rotimes"},
	0x02A36: {"otimesas"},
	0x02A37: {"Otimes"},
	0x02A38: {"odiv"},
	0x02A39: {"triplus"},
	0x02A3A: {"triminus"},
	0x02A3B: {"tritime"},
	0x02A3C: {"iprod", "intprod"},
	0x02A3F: {"amalg"},
	0x02A40: {"capdot"},
	0x02A42: {"ncup"},
	0x02A43: {"ncap"},
	0x02A44: {"capand"},
	0x02A45: {"cupor"},
	0x02A46: {"cupcap"},
	0x02A47: {"capcup"},
	0x02A48: {"cupbrcap"},
	0x02A49: {"capbrcup"},
	0x02A4A: {"cupcup"},
	0x02A4B: {"capcap"},
	0x02A4C: {"ccups"},
	0x02A4D: {"ccaps"},
	0x02A50: {"ccupssm"},
	0x02A53: {"And"},
	0x02A54: {"Or"},
	0x02A55: {"andand"},
	0x02A56: {"oror"},
	0x02A57: {"orslope"},
	0x02A58: {"andslope"},
	0x02A5A: {"andv"},
	0x02A5B: {"orv"},
	0x02A5C: {"andd"},
	0x02A5D: {"ord"},
	0x02A5F: {"wedbar"},
	0x02A66: {"sdote"},
	0x02A6A: {"simdot"},
	0x02A6D: {"congdot"},
	0x02A6E: {"easter"},
	0x02A6F: {"apacir"},
	0x02A70: {"apE"},
	0x02A71: {"eplus"},
	0x02A72: {"pluse"},
	0x02A73: {"Esim"},
	0x02A74: {"Colone"},
	0x02A75: {"Equal"},
	0x02A77: {"eDDot", "ddotseq"},
	0x02A78: {"equivDD"},
	0x02A79: {"ltcir"},
	0x02A7A: {"gtcir"},
	0x02A7B: {"ltquest"},
	0x02A7C: {"gtquest"},
	0x02A7D: {"les", "leqslant", "LessSlantEqual"},
	0x02A7E: {"ges", "geqslant", "GreaterSlantEqual"},
	0x02A7F: {"lesdot"},
	0x02A80: {"gesdot"},
	0x02A81: {"lesdoto"},
	0x02A82: {"gesdoto"},
	0x02A83: {"lesdotor"},
	0x02A84: {"gesdotol"},
	0x02A85: {"lap", "lessapprox"},
	0x02A86: {"gap", "gtrapprox"},
	0x02A87: {"lne", "lneq"},
	0x02A88: {"gne", "gneq"},
	0x02A89: {"lnap", "lnapprox"},
	0x02A8A: {"gnap", "gnapprox"},
	0x02A8B: {"lEg", "lesseqqgtr"},
	0x02A8C: {"gEl", "gtreqqless"},
	0x02A8D: {"lsime"},
	0x02A8E: {"gsime"},
	0x02A8F: {"lsimg"},
	0x02A90: {"gsiml"},
	0x02A91: {"lgE"},
	0x02A92: {"glE"},
	0x02A93: {"lesges"},
	0x02A94: {"gesles"},
	0x02A95: {"els", "eqslantless"},
	0x02A96: {"egs", "eqslantgtr"},
	0x02A97: {"elsdot"},
	0x02A98: {"egsdot"},
	0x02A99: {"el"},
	0x02A9A: {"eg"},
	0x02A9D: {"siml"},
	0x02A9E: {"simg"},
	0x02A9F: {"simlE"},
	0x02AA0: {"simgE"},
	0x02AA1: {"LessLess"},
	0x02AA2: {"GreaterGreater"},
	0x02AA4: {"glj"},
	0x02AA5: {"gla"},
	0x02AA6: {"ltcc"},
	0x02AA7: {"gtcc"},
	0x02AA8: {"lescc"},
	0x02AA9: {"gescc"},
	0x02AAA: {"smt"},
	0x02AAB: {"lat"},
	0x02AAC: {"smte"},
	0x02AAD: {"late"},
	0x02AAE: {"bumpE"},
	0x02AAF: {"pre", "preceq", "PrecedesEqual"},
	0x02AB0: {"sce", "succeq", "SucceedsEqual"},
	0x02AB3: {"prE"},
	0x02AB4: {"scE"},
	0x02AB5: {"prnE", "precneqq"},
	0x02AB6: {"scnE", "succneqq"},
	0x02AB7: {"prap", "precapprox"},
	0x02AB8: {"scap", "succapprox"},
	0x02AB9: {"prnap", "precnapprox"},
	0x02ABA: {"scnap", "succnapprox"},
	0x02ABB: {"Pr"},
	0x02ABC: {"Sc"},
	0x02ABD: {"subdot"},
	0x02ABE: {"supdot"},
	0x02ABF: {"subplus"},
	0x02AC0: {"supplus"},
	0x02AC1: {"submult"},
	0x02AC2: {"supmult"},
	0x02AC3: {"subedot"},
	0x02AC4: {"supedot"},
	0x02AC5: {"subE", "subseteqq"},
	0x02AC6: {"supE", "supseteqq"},
	0x02AC7: {"subsim"},
	0x02AC8: {"supsim"},
	0x02ACB: {"subnE", "subsetneqq"},
	0x02ACC: {"supnE", "supsetneqq"},
	0x02ACF: {"csub"},
	0x02AD0: {"csup"},
	0x02AD1: {"csube"},
	0x02AD2: {"csupe"},
	0x02AD3: {"subsup"},
	0x02AD4: {"supsub"},
	0x02AD5: {"subsub"},
	0x02AD6: {"supsup"},
	0x02AD7: {"suphsub"},
	0x02AD8: {"supdsub"},
	0x02AD9: {"forkv"},
	0x02ADA: {"topfork"},
	0x02ADB: {"mlcp"},
	0x02AE4: {"Dashv", "DoubleLeftTee"},
	0x02AE6: {"Vdashl"},
	0x02AE7: {"Barv"},
	0x02AE8: {"vBar"},
	0x02AE9: {"vBarv"},
	0x02AEB: {"Vbar"},
	0x02AEC: {"Not"},
	0x02AED: {"bNot"},
	0x02AEE: {"rnmid"},
	0x02AEF: {"cirmid"},
	0x02AF0: {"midcir"},
	0x02AF1: {"topcir"},
	0x02AF2: {"nhpar"},
	0x02AF3: {"parsim"},
	0x02AFD: {"parsl"},
	0x0FB00: {"fflig"},
	0x0FB01: {"filig"},
	0x0FB02: {"fllig"},
	0x0FB03: {"ffilig"},
	0x0FB04: {"ffllig"},
	0x1D49C: {"Ascr"},
	0x1D49E: {"Cscr"},
	0x1D49F: {"Dscr"},
	0x1D4A2: {"Gscr"},
	0x1D4A5: {"Jscr"},
	0x1D4A6: {"Kscr"},
	0x1D4A9: {"Nscr"},
	0x1D4AA: {"Oscr"},
	0x1D4AB: {"Pscr"},
	0x1D4AC: {"Qscr"},
	0x1D4AE: {"Sscr"},
	0x1D4AF: {"Tscr"},
	0x1D4B0: {"Uscr"},
	0x1D4B1: {"Vscr"},
	0x1D4B2: {"Wscr"},
	0x1D4B3: {"Xscr"},
	0x1D4B4: {"Yscr"},
	0x1D4B5: {"Zscr"},
	0x1D4B6: {"ascr"},
	0x1D4B7: {"bscr"},
	0x1D4B8: {"cscr"},
	0x1D4B9: {"dscr"},
	0x1D4BB: {"fscr"},
	0x1D4BD: {"hscr"},
	0x1D4BE: {"iscr"},
	0x1D4BF: {"jscr"},
	0x1D4C0: {"kscr"},
	0x1D4C1: {"lscr"},
	0x1D4C2: {"mscr"},
	0x1D4C3: {"nscr"},
	0x1D4C5: {"pscr"},
	0x1D4C6: {"qscr"},
	0x1D4C7: {"rscr"},
	0x1D4C8: {"sscr"},
	0x1D4C9: {"tscr"},
	0x1D4CA: {"uscr"},
	0x1D4CB: {"vscr"},
	0x1D4CC: {"wscr"},
	0x1D4CD: {"xscr"},
	0x1D4CE: {"yscr"},
	0x1D4CF: {"zscr"},
	0x1D504: {"Afr"},
	0x1D505: {"Bfr"},
	0x1D507: {"Dfr"},
	0x1D508: {"Efr"},
	0x1D509: {"Ffr"},
	0x1D50A: {"Gfr"},
	0x1D50D: {"Jfr"},
	0x1D50E: {"Kfr"},
	0x1D50F: {"Lfr"},
	0x1D510: {"Mfr"},
	0x1D511: {"Nfr"},
	0x1D512: {"Ofr"},
	0x1D513: {"Pfr"},
	0x1D514: {"Qfr"},
	0x1D516: {"Sfr"},
	0x1D517: {"Tfr"},
	0x1D518: {"Ufr"},
	0x1D519: {"Vfr"},
	0x1D51A: {"Wfr"},
	0x1D51B: {"Xfr"},
	0x1D51C: {"Yfr"},
	0x1D51E: {"afr"},
	0x1D51F: {"bfr"},
	0x1D520: {"cfr"},
	0x1D521: {"dfr"},
	0x1D522: {"efr"},
	0x1D523: {"ffr"},
	0x1D524: {"gfr"},
	0x1D525: {"hfr"},
	0x1D526: {"ifr"},
	0x1D527: {"jfr"},
	0x1D528: {"kfr"},
	0x1D529: {"lfr"},
	0x1D52A: {"mfr"},
	0x1D52B: {"nfr"},
	0x1D52C: {"ofr"},
	0x1D52D: {"pfr"},
	0x1D52E: {"qfr"},
	0x1D52F: {"rfr"},
	0x1D530: {"sfr"},
	0x1D531: {"tfr"},
	0x1D532: {"ufr"},
	0x1D533: {"vfr"},
	0x1D534: {"wfr"},
	0x1D535: {"xfr"},
	0x1D536: {"yfr"},
	0x1D537: {"zfr"},
	0x1D538: {"Aopf"},
	0x1D539: {"Bopf"},
	0x1D53B: {"Dopf"},
	0x1D53C: {"Eopf"},
	0x1D53D: {"Fopf"},
	0x1D53E: {"Gopf"},
	0x1D540: {"Iopf"},
	0x1D541: {"Jopf"},
	0x1D542: {"Kopf"},
	0x1D543: {"Lopf"},
	0x1D544: {"Mopf"},
	0x1D546: {"Oopf"},
	0x1D54A: {"Sopf"},
	0x1D54B: {"Topf"},
	0x1D54C: {"Uopf"},
	0x1D54D: {"Vopf"},
	0x1D54E: {"Wopf"},
	0x1D54F: {"Xopf"},
	0x1D550: {"Yopf"},
	0x1D552: {"aopf"},
	0x1D553: {"bopf"},
	0x1D554: {"copf"},
	0x1D555: {"dopf"},
	0x1D556: {"eopf"},
	0x1D557: {"fopf"},
	0x1D558: {"gopf"},
	0x1D559: {"hopf"},
	0x1D55A: {"iopf"},
	0x1D55B: {"jopf"},
	0x1D55C: {"kopf"},
	0x1D55D: {"lopf"},
	0x1D55E: {"mopf"},
	0x1D55F: {"nopf"},
	0x1D560: {"oopf"},
	0x1D561: {"popf"},
	0x1D562: {"qopf"},
	0x1D563: {"ropf"},
	0x1D564: {"sopf"},
	0x1D565: {"topf"},
	0x1D566: {"uopf"},
	0x1D567: {"vopf"},
	0x1D568: {"wopf"},
	0x1D569: {"xopf"},
	0x1D56A: {"yopf"},
	0x1D56B: {"zopf"},
}
