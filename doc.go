/*
Package zhconv converts Chinese text between regional variants.

Description

Chinese is written in two scripts, Simplified and Traditional, and both
come in regional flavours which differ in vocabulary and punctuation:
mainland China, Singapore and Malaysia use Simplified characters, Taiwan,
Hong Kong and Macau use Traditional ones. A variant is identified by a
locale:

	zh        no conversion
	zh-hans   Simplified
	zh-hant   Traditional
	zh-cn     mainland China
	zh-sg     Singapore
	zh-my     Malaysia
	zh-tw     Taiwan
	zh-hk     Hong Kong
	zh-mo     Macau

Conversion is done by forward maximum matching against per-locale
dictionaries, which are made from the conversion tables of MediaWiki:
at every position of the input the longest dictionary key is replaced by
its translation. This needs no word segmentation and is fast, but it is not
perfect; clients may supply override dictionaries to correct it.

Text written for MediaWiki may contain manual conversion markup. Blocks like

	-{zh-hans:计算机; zh-hant:電腦;}-

select the text for the target variant, and blocks with flags declare
conversion rules for the rest of the document (see package markup).

	s := zhconv.Convert("我幹什麼不干你事。", locale.ZhCN, nil)
	// s == "我干什么不干你事。"

	t, err := zhconv.ConvertAnnotated("-{zh-hant:資訊工程;zh-hans:计算机工程学;}-", locale.ZhTW, nil)
	// t == "資訊工程"

The package level functions use a converter with the tables embedded in
package tables. Clients with full MediaWiki tables create their own
converter with option WithTables.

BSD License

Copyright (c) 2022, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Locales and their fallback chains live in sub-package locale, conversion
tables in sub-package tables. Sub-package dict builds per-locale
dictionaries, sub-package match does the matching and sub-package markup
interprets conversion markup. Type Converter ties all of them together.
*/
package zhconv
